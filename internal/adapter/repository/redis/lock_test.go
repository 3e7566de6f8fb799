package redis

import (
	"context"
	"testing"
	"time"
)

func TestRunLockAcquireRelease(t *testing.T) {
	client, _ := newTestRedisClient(t)
	lock := NewRunLock(client, time.Minute)
	ctx := context.Background()

	ok, err := lock.Acquire(ctx, "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected to acquire free lock")
	}

	ok, err = lock.Acquire(ctx, "run-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected held lock to reject second holder")
	}

	if err := lock.Release(ctx, "run-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err = lock.Acquire(ctx, "run-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected lock to be free after release")
	}
}

func TestRunLockReleaseByNonHolderKeepsLock(t *testing.T) {
	client, _ := newTestRedisClient(t)
	lock := NewRunLock(client, time.Minute)
	ctx := context.Background()

	if ok, _ := lock.Acquire(ctx, "run-1"); !ok {
		t.Fatal("expected to acquire free lock")
	}

	if err := lock.Release(ctx, "run-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ok, err := lock.Acquire(ctx, "run-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("release by a non-holder must not free the lock")
	}
}

func TestRunLockExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	lock := NewRunLock(client, time.Second)
	ctx := context.Background()

	if ok, _ := lock.Acquire(ctx, "run-1"); !ok {
		t.Fatal("expected to acquire free lock")
	}

	mr.FastForward(2 * time.Second)

	ok, err := lock.Acquire(ctx, "run-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected expired lock to be acquirable")
	}
}

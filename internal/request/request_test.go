package request

import (
	"context"
	"testing"
)

func TestBag_StashAndTake(t *testing.T) {
	ctx := WithBag(context.Background())

	bag, ok := BagFrom(ctx)
	if !ok {
		t.Fatal("expected bag on context")
	}

	bag.Stash("carrier", "FedEx")
	v, ok := bag.Take("carrier")
	if !ok || v != "FedEx" {
		t.Fatalf("expected FedEx, got %q (ok=%v)", v, ok)
	}
}

func TestBag_TakeConsumes(t *testing.T) {
	bag := NewBag()
	bag.Stash("carrier", "UPS")

	if _, ok := bag.Take("carrier"); !ok {
		t.Fatal("first take should succeed")
	}
	if _, ok := bag.Take("carrier"); ok {
		t.Fatal("second take should find nothing")
	}
}

func TestBagFrom_NoBag(t *testing.T) {
	if _, ok := BagFrom(context.Background()); ok {
		t.Fatal("expected no bag on a bare context")
	}
}

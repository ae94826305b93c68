package asset

import (
	"context"
	"errors"
	"testing"
)

func TestGenerateVariants_AllSizes(t *testing.T) {
	tc := &mockTranscoder{}
	g := NewVariantGenerator(tc)

	variants, err := g.GenerateVariants(context.Background(), []byte("img"), DefaultVariantSpecs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(variants) != 4 {
		t.Fatalf("expected 4 variants, got %d", len(variants))
	}
	wantWidths := map[string]int{"thumb": 400, "medium": 800, "large": 1200, "original": 2000}
	for i, v := range variants {
		if v.Name != DefaultVariantSpecs[i].Name {
			t.Errorf("variant %d: name %q, want %q", i, v.Name, DefaultVariantSpecs[i].Name)
		}
		if v.Width != wantWidths[v.Name] {
			t.Errorf("variant %q: width %d, want %d", v.Name, v.Width, wantWidths[v.Name])
		}
		if len(v.Data) == 0 {
			t.Errorf("variant %q: empty data", v.Name)
		}
	}
	if tc.calls != 4 {
		t.Errorf("expected 4 transcode calls, got %d", tc.calls)
	}
}

func TestGenerateVariants_AllOrNothing(t *testing.T) {
	tc := &mockTranscoder{errForWidth: map[int]error{800: errors.New("encode fail")}}
	g := NewVariantGenerator(tc)

	_, err := g.GenerateVariants(context.Background(), []byte("img"), DefaultVariantSpecs)
	if err == nil {
		t.Fatal("expected the whole batch to fail")
	}
	var tErr *TranscodeError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected *TranscodeError, got %T", err)
	}
}

func TestGenerateVariantsPartial_IsolatesFailures(t *testing.T) {
	tc := &mockTranscoder{errForWidth: map[int]error{800: errors.New("encode fail")}}
	g := NewVariantGenerator(tc)

	results := g.GenerateVariantsPartial(context.Background(), []byte("img"), DefaultVariantSpecs)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			if res.Name != "medium" {
				t.Errorf("unexpected failing variant %q", res.Name)
			}
			var tErr *TranscodeError
			if !errors.As(res.Err, &tErr) {
				t.Errorf("expected *TranscodeError, got %T", res.Err)
			}
			continue
		}
		if len(res.Data) == 0 {
			t.Errorf("variant %q: empty data", res.Name)
		}
	}
	if failed != 1 {
		t.Errorf("expected exactly 1 failure, got %d", failed)
	}
}

package asset

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Variant is one transcoded rendition of a source image.
type Variant struct {
	Name  string
	Width int
	Data  []byte
}

// VariantResult carries the outcome of one rendition in partial mode.
type VariantResult struct {
	Variant
	Err error
}

// VariantGenerator drives the Transcoder once per spec entry.
// Renditions are independent and run concurrently.
type VariantGenerator struct {
	transcoder Transcoder
}

// NewVariantGenerator constructs a VariantGenerator.
func NewVariantGenerator(tc Transcoder) *VariantGenerator {
	return &VariantGenerator{transcoder: tc}
}

// GenerateVariants produces every rendition or fails the whole batch.
func (g *VariantGenerator) GenerateVariants(ctx context.Context, data []byte, specs []VariantSpec) ([]Variant, error) {
	variants := make([]Variant, len(specs))

	eg, _ := errgroup.WithContext(ctx)
	for i, spec := range specs {
		eg.Go(func() error {
			out, err := g.transcoder.Transcode(bytes.NewReader(data), spec.Width)
			if err != nil {
				return &TranscodeError{Err: fmt.Errorf("variant %q: %w", spec.Name, err)}
			}
			variants[i] = Variant{Name: spec.Name, Width: spec.Width, Data: out}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}

// GenerateVariantsPartial keeps going when a rendition fails and
// reports each outcome individually, in spec order.
func (g *VariantGenerator) GenerateVariantsPartial(ctx context.Context, data []byte, specs []VariantSpec) []VariantResult {
	results := make([]VariantResult, len(specs))

	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := g.transcoder.Transcode(bytes.NewReader(data), spec.Width)
			if err != nil {
				results[i] = VariantResult{
					Variant: Variant{Name: spec.Name, Width: spec.Width},
					Err:     &TranscodeError{Err: fmt.Errorf("variant %q: %w", spec.Name, err)},
				}
				return
			}
			results[i] = VariantResult{Variant: Variant{Name: spec.Name, Width: spec.Width, Data: out}}
		}()
	}
	wg.Wait()
	return results
}

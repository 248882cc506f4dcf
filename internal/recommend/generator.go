// Stylist - Wardrobe Outfit Compatibility and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package recommend

import (
	"context"
	"sync"

	"github.com/tomtom215/stylist/internal/recommend/scoring"
	"github.com/tomtom215/stylist/internal/wardrobe"
)

// Generator enumerates candidate outfits from a wardrobe snapshot.
type Generator struct {
	pairing *scoring.PairingEngine
	cfg     GenerationConfig
}

// NewGenerator creates a generator.
func NewGenerator(pairing *scoring.PairingEngine, cfg GenerationConfig) *Generator {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Generator{pairing: pairing, cfg: cfg}
}

// partition groups garments by outfit slot. Dresses and outerwear fill no
// slot and are dropped.
type partition struct {
	tops        []wardrobe.Garment
	bottoms     []wardrobe.Garment
	shoes       []wardrobe.Garment
	accessories []wardrobe.Garment
}

func partitionWardrobe(items []wardrobe.Garment) partition {
	var p partition
	for _, g := range items {
		switch g.Category() {
		case wardrobe.CategoryTop:
			p.tops = append(p.tops, g)
		case wardrobe.CategoryBottom:
			p.bottoms = append(p.bottoms, g)
		case wardrobe.CategoryShoes:
			p.shoes = append(p.shoes, g)
		case wardrobe.CategoryAccessory:
			p.accessories = append(p.accessories, g)
		}
	}
	return p
}

// Generate returns the candidate pool in enumeration order together with the
// number of top/bottom pairs evaluated. Pairs are scored on up to
// cfg.Workers goroutines; the output does not depend on evaluation order.
//
//nolint:gocritic // hugeParam: rc passed by value for immutability
func (g *Generator) Generate(ctx context.Context, items []wardrobe.Garment, rc Context) ([]Outfit, int, error) {
	p := partitionWardrobe(items)
	total := len(p.tops) * len(p.bottoms)
	if total == 0 {
		return []Outfit{}, 0, nil
	}

	slots := make([]*Outfit, total)
	workers := min(g.cfg.Workers, total)

	if workers == 1 {
		for idx := 0; idx < total; idx++ {
			if err := ctx.Err(); err != nil {
				return nil, idx, err
			}
			slots[idx] = g.evaluate(p, idx, rc)
		}
	} else if err := g.evaluateParallel(ctx, p, rc, slots, workers); err != nil {
		return nil, total, err
	}

	candidates := make([]Outfit, 0, total)
	for _, o := range slots {
		if o != nil {
			candidates = append(candidates, *o)
		}
	}
	return candidates, total, nil
}

//nolint:gocritic // hugeParam: rc passed by value for immutability
func (g *Generator) evaluateParallel(ctx context.Context, p partition, rc Context, slots []*Outfit, workers int) error {
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				slots[idx] = g.evaluate(p, idx, rc)
			}
		}()
	}

	var err error
feed:
	for idx := range slots {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()
	return err
}

// evaluate scores the top/bottom pair at idx and attaches the best shoe and
// accessory. It returns nil when the pair is pruned.
//
//nolint:gocritic // hugeParam: rc passed by value for immutability
func (g *Generator) evaluate(p partition, idx int, rc Context) *Outfit {
	top := p.tops[idx/len(p.bottoms)]
	bottom := p.bottoms[idx%len(p.bottoms)]

	pair := g.pairing.ScorePairing(top, bottom, rc.Occasion, rc.SkinTone)
	if pair.Overall <= g.cfg.MinPairScore {
		return nil
	}

	o := &Outfit{
		Items: []wardrobe.Garment{top, bottom},
		Score: pair.Overall,
		Pair:  pair,
		index: idx,
	}

	if shoe, avg, ok := g.bestAddition(o.Items, p.shoes, rc); ok && avg > 0 {
		o.Items = append(o.Items, shoe)
		o.ShoeScore = avg
		o.Score = (o.Score + avg) / 2
	}

	if acc, avg, ok := g.bestAddition(o.Items, p.accessories, rc); ok && avg > g.cfg.AccessoryThreshold {
		o.Items = append(o.Items, acc)
		o.AccessoryScore = avg
	}

	o.Level = g.pairing.Thresholds().Level(o.Score)
	return o
}

// bestAddition returns the candidate with the highest average score against
// current. Only positive pair scores enter the average. Ties keep the earlier
// candidate.
//
//nolint:gocritic // hugeParam: rc passed by value for immutability
func (g *Generator) bestAddition(current, candidates []wardrobe.Garment, rc Context) (wardrobe.Garment, float64, bool) {
	var (
		best    wardrobe.Garment
		bestAvg float64
		found   bool
	)
	for _, c := range candidates {
		var sum float64
		var n int
		for _, item := range current {
			s := g.pairing.ScorePairing(item, c, rc.Occasion, rc.SkinTone)
			if s.Overall > 0 {
				sum += s.Overall
				n++
			}
		}
		if n == 0 {
			continue
		}
		if avg := sum / float64(n); !found || avg > bestAvg {
			best, bestAvg, found = c, avg, true
		}
	}
	return best, bestAvg, found
}

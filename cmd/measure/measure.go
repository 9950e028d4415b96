package main

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/g-m-twostay/bimap"
	"go.uber.org/zap"
)

var errCorrupt = errors.New("bimap is corrupt")

// Stats of one round.
type Stats struct {
	Size                      uint
	HeightLeft, HeightRight   uint8
	Insert, Query, Erase      time.Duration
	Rejected, Erased, Flipped uint32
}

// round inserts c.Pairs random pairs into m, flips every hit and erases a c.Erase share of the inserted pairs.
func round(m *bimap.BiMap[int, int, uint32], rg *rand.Rand, c Config) Stats {
	var s Stats
	all := make([]int, 0, c.Pairs)
	start := time.Now()
	for range c.Pairs {
		l := rg.Int()
		if m.Insert(l, rg.Int()).IsEnd() {
			s.Rejected++
		} else {
			all = append(all, l)
		}
	}
	s.Insert = time.Since(start)

	start = time.Now()
	for _, l := range all {
		it := m.FindLeft(l)
		if !it.IsEnd() && m.FindRight(it.Flip().Value()).Flip() == it {
			s.Flipped++
		}
	}
	s.Query = time.Since(start)

	rg.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	start = time.Now()
	for _, l := range all[:int(float64(len(all))*c.Erase)] {
		if m.EraseLeft(l) {
			s.Erased++
		}
	}
	s.Erase = time.Since(start)
	s.Size, s.HeightLeft, s.HeightRight = m.Size(), m.HeightLeft(), m.HeightRight()
	return s
}

func run(c Config, log *zap.Logger) error {
	log.Info("starting",
		zap.Uint32("pairs", c.Pairs),
		zap.Int("rounds", c.Rounds),
		zap.Float64("erase", c.Erase),
		zap.Int64("seed", c.Seed))
	rg := rand.New(rand.NewSource(c.Seed))
	m := bimap.NewOrdered[int, int, uint32](c.Pairs)
	var total time.Duration
	for i := range c.Rounds {
		s := round(m, rg, c)
		total += s.Insert + s.Query + s.Erase
		// worst case AVL height for the current size
		bound := 1.44 * math.Log2(float64(s.Size)+2)
		log.Info("round",
			zap.Int("round", i),
			zap.Uint("size", s.Size),
			zap.Uint8("heightLeft", s.HeightLeft),
			zap.Uint8("heightRight", s.HeightRight),
			zap.Float64("heightBound", bound),
			zap.Uint32("rejected", s.Rejected),
			zap.Uint32("flipped", s.Flipped),
			zap.Uint32("erased", s.Erased),
			zap.Duration("insert", s.Insert),
			zap.Duration("query", s.Query),
			zap.Duration("erase", s.Erase))
		if c.Check && m.Corrupt() {
			log.Error("structure check failed", zap.Int("round", i))
			return errCorrupt
		}
	}
	log.Info("done", zap.Duration("total", total), zap.Uint("size", m.Size()))
	return nil
}

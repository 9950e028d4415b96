package comparisons

import (
	"strconv"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treebidimap"
	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/bimap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Every benchmark keeps a bijection between n ints and their decimal strings: insert all pairs,
// look each up from both sides, then erase half of them by Left.
// https://github.com/emirpasic/gods treebidimap is the closest ordered equivalent.
// Two google/btree or two GoLLRB trees keep two copies of every pair.
// haxmap and cornelk/hashmap pairs are unordered baselines.
const n = 1 << 14

var keys, vals = func() ([]int, []string) {
	ks, vs := make([]int, n), make([]string, n)
	for i := range ks {
		ks[i] = (i * 7919) % n
		vs[i] = strconv.Itoa(ks[i])
	}
	return ks, vs
}()

func BenchmarkBiMap(b *testing.B) {
	for range b.N {
		m := bimap.NewOrdered[int, string, uint32](n)
		for i, k := range keys {
			m.Insert(k, vals[i])
		}
		for i, k := range keys {
			if m.FindLeft(k).Flip().Value() != vals[i] || m.FindRight(vals[i]).Flip().Value() != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			m.EraseLeft(k)
		}
	}
}

func BenchmarkTreeBidiMap(b *testing.B) {
	for range b.N {
		m := treebidimap.NewWith(utils.IntComparator, utils.StringComparator)
		for i, k := range keys {
			m.Put(k, vals[i])
		}
		for i, k := range keys {
			v, _ := m.Get(k)
			l, _ := m.GetKey(vals[i])
			if v.(string) != vals[i] || l.(int) != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			m.Remove(k)
		}
	}
}

type pair struct {
	l int
	r string
}

func BenchmarkBTreePair(b *testing.B) {
	for range b.N {
		ls := btree.NewG[pair](16, func(a, b pair) bool { return a.l < b.l })
		rs := btree.NewG[pair](16, func(a, b pair) bool { return a.r < b.r })
		for i, k := range keys {
			ls.ReplaceOrInsert(pair{k, vals[i]})
			rs.ReplaceOrInsert(pair{k, vals[i]})
		}
		for i, k := range keys {
			p, _ := ls.Get(pair{l: k})
			q, _ := rs.Get(pair{r: vals[i]})
			if p.r != vals[i] || q.l != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			if p, ok := ls.Delete(pair{l: k}); ok {
				rs.Delete(p)
			}
		}
	}
}

type byLeft pair

func (u byLeft) Less(than llrb.Item) bool {
	return u.l < than.(byLeft).l
}

type byRight pair

func (u byRight) Less(than llrb.Item) bool {
	return u.r < than.(byRight).r
}

func BenchmarkLLRBPair(b *testing.B) {
	for range b.N {
		ls, rs := llrb.New(), llrb.New()
		for i, k := range keys {
			ls.ReplaceOrInsert(byLeft{k, vals[i]})
			rs.ReplaceOrInsert(byRight{k, vals[i]})
		}
		for i, k := range keys {
			p := ls.Get(byLeft{l: k})
			q := rs.Get(byRight{r: vals[i]})
			if p == nil || q == nil || p.(byLeft).r != vals[i] || q.(byRight).l != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			if p := ls.Delete(byLeft{l: k}); p != nil {
				rs.Delete(byRight(p.(byLeft)))
			}
		}
	}
}

func BenchmarkHaxMapPair(b *testing.B) {
	for range b.N {
		ls, rs := haxmap.New[int, string](n), haxmap.New[string, int](n)
		for i, k := range keys {
			ls.Set(k, vals[i])
			rs.Set(vals[i], k)
		}
		for i, k := range keys {
			v, _ := ls.Get(k)
			l, _ := rs.Get(vals[i])
			if v != vals[i] || l != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			if v, ok := ls.Get(k); ok {
				ls.Del(k)
				rs.Del(v)
			}
		}
	}
}

func BenchmarkHashMapPair(b *testing.B) {
	for range b.N {
		ls, rs := hashmap.New[int, string](), hashmap.New[string, int]()
		for i, k := range keys {
			ls.Insert(k, vals[i])
			rs.Insert(vals[i], k)
		}
		for i, k := range keys {
			v, _ := ls.Get(k)
			l, _ := rs.Get(vals[i])
			if v != vals[i] || l != k {
				b.Fatal("incorrect value", k)
			}
		}
		for _, k := range keys[:n/2] {
			if v, ok := ls.Get(k); ok {
				ls.Del(k)
				rs.Del(v)
			}
		}
	}
}

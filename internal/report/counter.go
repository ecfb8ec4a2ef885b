package report

import "sort"

// counter counts categories and remembers the order each was first seen in
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}

// table returns a copy of the counts; never nil so it encodes as {}
func (c *counter) table() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// top returns the n most frequent keys; equal counts keep first-seen order
func (c *counter) top(n int) []LieTypeCount {
	ranked := make([]LieTypeCount, 0, len(c.order))
	for _, k := range c.order {
		ranked = append(ranked, LieTypeCount{LieType: k, Count: c.counts[k]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

package bufalloc

import "github.com/launchdarkly/go-jsonstream/v3/jwriter"

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // bytes consumed, padding included
	Capacity    int     // backing buffer size in bytes
	Remaining   int     // bytes still available
	Utilization float64 // ratio of used to total capacity (0.0-1.0)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Remaining:   a.Remaining(),
		Utilization: utilization(a.SizeInUse(), a.Capacity()),
	}
}

// AppendJSON writes the snapshot to w as a JSON object.
func (m ArenaMetrics) AppendJSON(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("size_in_use").Int(m.SizeInUse)
	obj.Name("capacity").Int(m.Capacity)
	obj.Name("remaining").Int(m.Remaining)
	obj.Name("utilization").Float64(m.Utilization)
	obj.End()
}

// StackMetrics contains statistical information about a stack allocator.
type StackMetrics struct {
	SizeInUse       int     // bytes consumed, headers and padding included
	Capacity        int     // backing buffer size in bytes
	Remaining       int     // bytes still available
	LiveAllocations int     // allocations not yet freed or retired
	Utilization     float64 // ratio of used to total capacity (0.0-1.0)
}

// Metrics returns a snapshot of stack statistics.
func (s *Stack) Metrics() StackMetrics {
	return StackMetrics{
		SizeInUse:       s.SizeInUse(),
		Capacity:        s.Capacity(),
		Remaining:       s.Remaining(),
		LiveAllocations: s.liveAllocations(),
		Utilization:     utilization(s.SizeInUse(), s.Capacity()),
	}
}

// AppendJSON writes the snapshot to w as a JSON object.
func (m StackMetrics) AppendJSON(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("size_in_use").Int(m.SizeInUse)
	obj.Name("capacity").Int(m.Capacity)
	obj.Name("remaining").Int(m.Remaining)
	obj.Name("live_allocations").Int(m.LiveAllocations)
	obj.Name("utilization").Float64(m.Utilization)
	obj.End()
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	ChunkSize   int     // rounded-up chunk size in bytes
	NumChunks   int     // fixed chunk count
	FreeChunks  int     // chunks currently on the free list
	InUseChunks int     // chunks currently handed out
	Utilization float64 // ratio of in-use chunks to total chunks (0.0-1.0)
}

// Metrics returns a snapshot of pool statistics. Walks the free list, so it
// costs O(free chunks).
func (p *Pool) Metrics() PoolMetrics {
	free := p.freeChunks()
	return PoolMetrics{
		ChunkSize:   p.chunkSize,
		NumChunks:   p.numChunks,
		FreeChunks:  free,
		InUseChunks: p.numChunks - free,
		Utilization: utilization(p.numChunks-free, p.numChunks),
	}
}

// AppendJSON writes the snapshot to w as a JSON object.
func (m PoolMetrics) AppendJSON(w *jwriter.Writer) {
	obj := w.Object()
	obj.Name("chunk_size").Int(m.ChunkSize)
	obj.Name("num_chunks").Int(m.NumChunks)
	obj.Name("free_chunks").Int(m.FreeChunks)
	obj.Name("in_use_chunks").Int(m.InUseChunks)
	obj.Name("utilization").Float64(m.Utilization)
	obj.End()
}

func utilization(used, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

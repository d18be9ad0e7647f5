// Package analysis derives structural facts from a transition set: strongly
// connected components, terminal attractor cycles, parentless states and
// reachability. Generators use it to verify their output; the describe and
// graph commands use it for reporting.
package analysis

import (
	"sort"

	"github.com/aretw0/boolnet/pkg/domain"
)

// Result is the computed structure of a network.
type Result struct {
	States     []domain.State
	SCCs       [][]domain.State
	Attractors [][]domain.State
	Parentless []domain.State
}

// Analyze computes SCCs, attractors and parentless states for ts. States
// that only appear as targets are included in the graph.
func Analyze(ts domain.TransitionSet) *Result {
	g := buildGraph(ts)

	sccIDs, sccs := tarjan(g)

	// A terminal SCC has no edge leaving it. Fixed points appear here as
	// single states with a self-loop; a state with no outgoing edges at all
	// is an absorbing sink and counts as a size-1 attractor too.
	attractors := make([][]domain.State, 0)
	for id, members := range sccs {
		terminal := true
		for _, u := range members {
			for _, v := range g.adj[u] {
				if sccIDs[v] != id {
					terminal = false
				}
			}
		}
		if terminal {
			attractors = append(attractors, g.states(members))
		}
	}
	sort.Slice(attractors, func(i, j int) bool { return len(attractors[i]) > len(attractors[j]) })

	// Parentless states never appear as a transition target; a self-loop
	// counts as an incoming edge.
	inDeg := make([]int, g.n)
	for _, targets := range g.adj {
		for _, v := range targets {
			inDeg[v]++
		}
	}
	parentless := make([]domain.State, 0)
	for u := 0; u < g.n; u++ {
		if inDeg[u] == 0 {
			parentless = append(parentless, g.state(u))
		}
	}
	sort.Slice(parentless, func(i, j int) bool { return parentless[i] < parentless[j] })

	out := &Result{
		States:     g.allStates(),
		Attractors: attractors,
		Parentless: parentless,
	}
	for _, members := range sccs {
		out.SCCs = append(out.SCCs, g.states(members))
	}
	sort.Slice(out.SCCs, func(i, j int) bool { return len(out.SCCs[i]) > len(out.SCCs[j]) })
	return out
}

// AttractorSizes returns the attractor sizes as a descending multiset.
func (r *Result) AttractorSizes() []int {
	sizes := make([]int, len(r.Attractors))
	for i, a := range r.Attractors {
		sizes[i] = len(a)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	return sizes
}

// EveryStateReachesAttractor reports whether each state in ts has a directed
// path into some attractor. Computed by a reverse BFS from attractor states.
func EveryStateReachesAttractor(ts domain.TransitionSet) bool {
	g := buildGraph(ts)
	res := Analyze(ts)

	reach := make([]bool, g.n)
	queue := make([]int, 0, g.n)
	for _, a := range res.Attractors {
		for _, s := range a {
			u := g.index[s]
			if !reach[u] {
				reach[u] = true
				queue = append(queue, u)
			}
		}
	}
	rev := make([][]int, g.n)
	for u, targets := range g.adj {
		for _, v := range targets {
			rev[v] = append(rev[v], u)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, p := range rev[u] {
			if !reach[p] {
				reach[p] = true
				queue = append(queue, p)
			}
		}
	}
	for u := 0; u < g.n; u++ {
		if !reach[u] {
			return false
		}
	}
	return true
}

// graph is an integer-indexed adjacency view over a TransitionSet.
type graph struct {
	n     int
	adj   [][]int
	names []domain.State
	index map[domain.State]int
}

func buildGraph(ts domain.TransitionSet) *graph {
	g := &graph{index: make(map[domain.State]int)}
	add := func(s domain.State) int {
		if id, ok := g.index[s]; ok {
			return id
		}
		id := g.n
		g.index[s] = id
		g.names = append(g.names, s)
		g.adj = append(g.adj, nil)
		g.n++
		return id
	}
	for _, src := range ts.States() {
		u := add(src)
		for _, dst := range ts[src] {
			v := add(dst)
			g.adj[u] = append(g.adj[u], v)
		}
	}
	return g
}

func (g *graph) state(u int) domain.State { return g.names[u] }

func (g *graph) states(ids []int) []domain.State {
	out := make([]domain.State, len(ids))
	for i, u := range ids {
		out[i] = g.names[u]
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g *graph) allStates() []domain.State {
	out := make([]domain.State, len(g.names))
	copy(out, g.names)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// tarjan computes strongly connected components iteratively, returning the
// component id per node and the member list per component.
func tarjan(g *graph) ([]int, [][]int) {
	const unvisited = -1
	index := make([]int, g.n)
	low := make([]int, g.n)
	onStack := make([]bool, g.n)
	sccID := make([]int, g.n)
	for i := range index {
		index[i] = unvisited
		sccID[i] = unvisited
	}

	var (
		counter int
		stack   []int
		sccs    [][]int
	)

	type frame struct {
		node int
		edge int
	}

	for start := 0; start < g.n; start++ {
		if index[start] != unvisited {
			continue
		}
		callStack := []frame{{node: start}}
		for len(callStack) > 0 {
			f := &callStack[len(callStack)-1]
			u := f.node
			if f.edge == 0 {
				index[u] = counter
				low[u] = counter
				counter++
				stack = append(stack, u)
				onStack[u] = true
			}
			advanced := false
			for f.edge < len(g.adj[u]) {
				v := g.adj[u][f.edge]
				f.edge++
				if index[v] == unvisited {
					callStack = append(callStack, frame{node: v})
					advanced = true
					break
				}
				if onStack[v] && index[v] < low[u] {
					low[u] = index[v]
				}
			}
			if advanced {
				continue
			}
			if low[u] == index[u] {
				var members []int
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					sccID[w] = len(sccs)
					members = append(members, w)
					if w == u {
						break
					}
				}
				sccs = append(sccs, members)
			}
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := callStack[len(callStack)-1].node
				if low[u] < low[parent] {
					low[parent] = low[u]
				}
			}
		}
	}
	return sccID, sccs
}

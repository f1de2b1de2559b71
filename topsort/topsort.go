// Package topsort implements the generic, cycle-detecting topological
// sort over a name-keyed dependency map that spec §4.3 requires for
// fragment-cycle detection. It has no direct analogue in the teacher,
// which detects fragment cycles implicitly by recursing into spread
// selection sets (a path that simply never terminates on a cycle);
// this module makes cycle detection an explicit, terminating
// algorithm instead, per spec §5's "no unbounded call depth" and §9's
// instruction to bound recursion with explicit worklists.
package topsort

import "sort"

// Result is the outcome of Sort: either a linear order with no cycles,
// or the list of cyclic components found (each of size > 1, or a
// single self-loop) when the graph isn't a DAG.
type Result struct {
	Order  []string
	Cycles [][]string
}

func (r Result) HasCycles() bool { return len(r.Cycles) > 0 }

// Sort runs Kahn's algorithm over deps: a -> the set of names a
// depends on. If a depends on b, b precedes a in Order. Ordering among
// independent nodes is stable in declared order, which callers convey
// via declOrder (the full key set in declaration order) — the map
// itself has no meaningful iteration order (spec §9 "Iteration order").
func Sort(deps map[string]map[string]bool, declOrder []string) Result {
	indegree := make(map[string]int, len(declOrder))
	dependents := make(map[string][]string, len(declOrder)) // b -> [a such that a depends on b]

	pos := make(map[string]int, len(declOrder))
	for i, name := range declOrder {
		if _, ok := indegree[name]; !ok {
			indegree[name] = 0
			pos[name] = i
		}
	}
	for a, bs := range deps {
		names := make([]string, 0, len(bs))
		for b := range bs {
			names = append(names, b)
		}
		sort.Strings(names) // deterministic regardless of map iteration order
		for _, b := range names {
			indegree[a]++
			dependents[b] = append(dependents[b], a)
		}
	}

	var queue []string
	for _, name := range declOrder {
		if indegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var order []string
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		order = append(order, n)

		deps2 := dependents[n]
		sort.Strings(deps2)
		sort.SliceStable(deps2, func(i, j int) bool { return pos[deps2[i]] < pos[deps2[j]] })
		for _, a := range deps2 {
			indegree[a]--
			if indegree[a] == 0 {
				queue = append(queue, a)
			}
		}
	}

	if len(order) == len(declOrder) {
		return Result{Order: order}
	}

	remaining := make(map[string]bool)
	for _, name := range declOrder {
		if indegree[name] > 0 || !contains(order, name) {
			remaining[name] = true
		}
	}
	return Result{Cycles: stronglyConnectedComponents(deps, remaining, declOrder)}
}

func contains(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}

// stronglyConnectedComponents runs Tarjan's algorithm restricted to
// the nodes left over after Kahn's algorithm stalls (the nodes in a
// cycle and the nodes that depend on one), using an explicit stack
// rather than recursion; only the cyclic components are returned.
func stronglyConnectedComponents(deps map[string]map[string]bool, nodes map[string]bool, declOrder []string) [][]string {
	index := make(map[string]int)
	lowlink := make(map[string]int)
	onStack := make(map[string]bool)
	var indexStack []string
	counter := 0
	var components [][]string

	type frame struct {
		node     string
		children []string
		ci       int
	}

	var order []string
	for _, n := range declOrder {
		if nodes[n] {
			order = append(order, n)
		}
	}

	var strongconnect func(start string)
	strongconnect = func(start string) {
		var callStack []*frame

		push := func(n string) {
			index[n] = counter
			lowlink[n] = counter
			counter++
			indexStack = append(indexStack, n)
			onStack[n] = true

			children := make([]string, 0, len(deps[n]))
			for c := range deps[n] {
				if nodes[c] {
					children = append(children, c)
				}
			}
			sort.Strings(children)
			callStack = append(callStack, &frame{node: n, children: children})
		}

		push(start)

		for len(callStack) > 0 {
			top := callStack[len(callStack)-1]
			if top.ci < len(top.children) {
				child := top.children[top.ci]
				top.ci++
				if _, seen := index[child]; !seen {
					push(child)
					continue
				} else if onStack[child] {
					if index[child] < lowlink[top.node] {
						lowlink[top.node] = index[child]
					}
				}
				continue
			}

			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := callStack[len(callStack)-1]
				if lowlink[top.node] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[top.node]
				}
			}

			if lowlink[top.node] == index[top.node] {
				var comp []string
				for {
					n := indexStack[len(indexStack)-1]
					indexStack = indexStack[:len(indexStack)-1]
					onStack[n] = false
					comp = append(comp, n)
					if n == top.node {
						break
					}
				}
				if len(comp) > 1 || selfLoop(deps, comp[0]) {
					components = append(components, comp)
				}
			}
		}
	}

	for _, n := range order {
		if _, seen := index[n]; !seen {
			strongconnect(n)
		}
	}

	return components
}

func selfLoop(deps map[string]map[string]bool, n string) bool {
	return deps[n][n]
}

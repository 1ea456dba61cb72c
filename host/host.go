// SPDX-License-Identifier: EPL-2.0

package host

import (
	"fmt"

	"go.uber.org/zap"
)

// Node is one attached processor instance.
type Node struct {
	name string
	proc Processor
	live bool
}

func (n *Node) Name() string { return n.name }

// Live reports whether the node is still invoked on each tick.
func (n *Node) Live() bool { return n.live }

// Processor returns the underlying instance.
func (n *Node) Processor() Processor { return n.proc }

// Host renders ticks through its attached nodes. Attach is not safe to call
// concurrently with Process; the graph is built before rendering starts.
// Process itself runs on the render goroutine and does not log or allocate.
type Host struct {
	reg    *Registry
	log    *zap.Logger
	nodes  []*Node
	ticks  uint64
	active int
}

// New returns a Host that instantiates processors from reg. A nil logger
// disables logging.
func New(reg *Registry, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}

	return &Host{reg: reg, log: log}
}

// Attach instantiates the processor registered as name and appends it to the
// render order.
func (h *Host) Attach(name string) (*Node, error) {
	p, err := h.reg.New(name)
	if err != nil {
		return nil, fmt.Errorf("attaching node: %w", err)
	}

	n := &Node{name: name, proc: p, live: true}
	h.nodes = append(h.nodes, n)
	h.active++

	h.log.Debug("node attached", zap.String("processor", name), zap.Int("nodes", len(h.nodes)))

	return n, nil
}

// Process renders one tick: every live node is invoked once, in attachment
// order, with the same inputs. It returns false once no node is live.
func (h *Host) Process(inputs [][][]float32) bool {
	h.ticks++

	for _, n := range h.nodes {
		if !n.live {
			continue
		}
		if !n.proc.Process(inputs) {
			n.live = false
			h.active--
		}
	}

	return h.active > 0
}

// Live returns the number of nodes still being invoked.
func (h *Host) Live() int { return h.active }

// Ticks returns the number of ticks rendered so far.
func (h *Host) Ticks() uint64 { return h.ticks }

// Nodes returns the attached nodes in render order.
func (h *Host) Nodes() []*Node {
	out := make([]*Node, len(h.nodes))
	copy(out, h.nodes)

	return out
}

package treemodel

import "math"

// NewLeafCount builds a count leaf. NSamples and MaxCount are derived from
// counts rather than trusted from the caller, enforcing the invariant from
// the design (n_samples = sum(counts), max_count = max(counts)).
func NewLeafCount(counts []uint32) *Node {
	c := make([]uint32, len(counts))
	copy(c, counts)

	var total, max uint32
	for _, v := range c {
		total += v
		if v > max {
			max = v
		}
	}

	return &Node{Kind: NodeLeafCount, Counts: c, NSamples: total, MaxCount: max}
}

// NewLeafLog builds a logarithmic-score leaf.
func NewLeafLog(logScores []float64, weight float64) *Node {
	s := make([]float64, len(logScores))
	copy(s, logScores)
	return &Node{Kind: NodeLeafLog, LogScores: s, Weight: weight}
}

// NewSplit builds a univariate split node x_i <= k, wiring parent
// back-pointers on both children.
func NewSplit(featureIndex int, threshold float64, left, right *Node) *Node {
	n := &Node{
		Kind:         NodeSplit,
		FeatureIndex: featureIndex,
		Threshold:    threshold,
		Left:         left,
		Right:        right,
	}
	left.parent = n
	right.parent = n
	return n
}

// Labels returns the argmax label set of a leaf: the set of label indices
// tied for the highest count (or score). Calling Labels on a split node
// panics, since only the orchestrator-validated model construction paths
// should ever do so.
func (n *Node) Labels() LabelSet {
	switch n.Kind {
	case NodeLeafCount:
		return argmaxUint32(n.Counts)
	case NodeLeafLog:
		return argmaxFloat64(n.LogScores)
	default:
		panic("treemodel: Labels called on a non-leaf node")
	}
}

func argmaxUint32(vals []uint32) LabelSet {
	s := make(LabelSet)
	if len(vals) == 0 {
		return s
	}

	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	for i, v := range vals {
		if v == max {
			s.Add(i)
		}
	}
	return s
}

func argmaxFloat64(vals []float64) LabelSet {
	s := make(LabelSet)
	if len(vals) == 0 {
		return s
	}

	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}
	for i, v := range vals {
		if v == max {
			s.Add(i)
		}
	}
	return s
}

// Probabilities returns the leaf's per-label probability distribution.
// For a count leaf this is counts[i]/n_samples; for a log leaf it is the
// leaf's logit vector passed through softmax.
func (n *Node) Probabilities() []float64 {
	switch n.Kind {
	case NodeLeafCount:
		p := make([]float64, len(n.Counts))
		if n.NSamples == 0 {
			return p
		}
		for i, c := range n.Counts {
			p[i] = float64(c) / float64(n.NSamples)
		}
		return p
	case NodeLeafLog:
		return softmax(n.LogScores)
	default:
		panic("treemodel: Probabilities called on a non-leaf node")
	}
}

func softmax(logits []float64) []float64 {
	if len(logits) == 0 {
		return nil
	}

	max := logits[0]
	for _, v := range logits[1:] {
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		// v - max <= 0 for every entry, so this never overflows.
		e := math.Exp(v - max)
		out[i] = e
		sum += e
	}
	if sum == 0 {
		return out
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}

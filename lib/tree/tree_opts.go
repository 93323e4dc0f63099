package tree

import (
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/xlog"
)

type treeKind string

const (
	bstKind    treeKind = "bst"
	avlKind    treeKind = "avl"
	rbTreeKind treeKind = "rbtree"
)

type rotationKind string

const (
	rotationLL rotationKind = "LL"
	rotationRR rotationKind = "RR"
	rotationLR rotationKind = "LR"
	rotationRL rotationKind = "RL"
)

type treeConfig[K any] struct {
	kind      treeKind
	cmp       infra.Comparator[K]
	isDesc    bool
	statsName string
	logger    xlog.XLogger
	stats     *treeStats
}

// onRotated is called once per logical rotation, an LR or RL
// rotation is reported once.
func (cfg *treeConfig[K]) onRotated(kind rotationKind, pivot K) {
	if cfg.logger != nil {
		cfg.logger.Debug("rotation",
			zap.String("kind", string(kind)),
			zap.Any("pivot", pivot),
		)
	}
	cfg.stats.IncreaseRotationCount(kind)
}

func (cfg *treeConfig[K]) onRecolored(grandParent K) {
	if cfg.logger != nil {
		cfg.logger.Debug("recolor", zap.Any("grandParent", grandParent))
	}
	cfg.stats.IncreaseRecolorCount()
}

type TreeOption[K any] func(*treeConfig[K])

// WithTreeDesc reverses the comparator, the in-order traversal
// visits the keys from the greatest to the least.
func WithTreeDesc[K any]() TreeOption[K] {
	return func(cfg *treeConfig[K]) {
		cfg.isDesc = true
	}
}

// WithTreeLogger logs every rotation and recoloring at debug level.
func WithTreeLogger[K any](logger xlog.XLogger) TreeOption[K] {
	return func(cfg *treeConfig[K]) {
		if logger == nil {
			return
		}
		cfg.logger = logger
	}
}

// WithTreeStats records the tree counters into the otel meter
// named "xalgo/tree/<name>".
func WithTreeStats[K any](name string) TreeOption[K] {
	return func(cfg *treeConfig[K]) {
		cfg.statsName = name
	}
}

func newTreeConfig[K any](kind treeKind, cmp infra.Comparator[K], opts ...TreeOption[K]) *treeConfig[K] {
	if cmp == nil {
		panic("[tree] nil comparator")
	}
	cfg := &treeConfig[K]{
		kind: kind,
		cmp:  cmp,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.isDesc {
		cfg.cmp = infra.ReversedComparator[K](cmp)
	}
	if cfg.logger != nil {
		cfg.logger = cfg.logger.Named(string(kind))
	}
	if cfg.statsName != "" {
		cfg.stats = newTreeStats(kind, cfg.statsName)
	}
	return cfg
}

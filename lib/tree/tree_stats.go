package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TreeStatsName = "xalgo/tree"
)

type treeStats struct {
	kindAttrs     attribute.Set
	nodeCount     metric.Int64UpDownCounter
	insertedCount metric.Int64Counter
	removedCount  metric.Int64Counter
	rotationCount metric.Int64Counter
	recolorCount  metric.Int64Counter
}

func (stats *treeStats) IncreaseInsertedCount() {
	if stats == nil {
		return
	}
	stats.insertedCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.kindAttrs))
	stats.nodeCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.kindAttrs))
}

func (stats *treeStats) IncreaseRemovedCount() {
	if stats == nil {
		return
	}
	stats.removedCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.kindAttrs))
	stats.nodeCount.Add(context.Background(), -1, metric.WithAttributeSet(stats.kindAttrs))
}

func (stats *treeStats) RecordReleased(count int64) {
	if stats == nil || count <= 0 {
		return
	}
	stats.nodeCount.Add(context.Background(), -count, metric.WithAttributeSet(stats.kindAttrs))
}

func (stats *treeStats) IncreaseRotationCount(kind rotationKind) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("xalgo.tree.kind", stats.kind()),
		attribute.String("xalgo.tree.rotation", string(kind)),
	)
	stats.rotationCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func (stats *treeStats) IncreaseRecolorCount() {
	if stats == nil {
		return
	}
	stats.recolorCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.kindAttrs))
}

func (stats *treeStats) kind() string {
	v, _ := stats.kindAttrs.Value("xalgo.tree.kind")
	return v.AsString()
}

func newTreeStats(kind treeKind, name string) *treeStats {
	meterName := fmt.Sprintf("%s/%s", TreeStatsName, name)
	return &treeStats{
		kindAttrs: attribute.NewSet(attribute.String("xalgo.tree.kind", string(kind))),
		nodeCount: lo.Must[metric.Int64UpDownCounter](otel.Meter(meterName).
			Int64UpDownCounter(
				"xalgo.tree.node.count",
				metric.WithDescription("The number of nodes in the tree."),
			),
		),
		insertedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xalgo.tree.inserted.count",
				metric.WithDescription("The number of keys inserted into the tree."),
			),
		),
		removedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xalgo.tree.removed.count",
				metric.WithDescription("The number of keys removed from the tree."),
			),
		),
		rotationCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xalgo.tree.rotation.count",
				metric.WithDescription("The number of rotations applied to rebalance the tree."),
			),
		),
		recolorCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"xalgo.tree.recolor.count",
				metric.WithDescription("The number of red uncle recolorings in the red-black tree."),
			),
		),
	}
}

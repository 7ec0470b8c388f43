package main

import (
	"context"
	"flag"

	"github.com/waypointd/waypointd/pkg/datastructure"
	"github.com/waypointd/waypointd/pkg/engine/routing"
	"github.com/waypointd/waypointd/pkg/http"
	"github.com/waypointd/waypointd/pkg/http/usecases"
	"github.com/waypointd/waypointd/pkg/logger"
	"github.com/waypointd/waypointd/pkg/spatialindex"
	"github.com/waypointd/waypointd/pkg/util"
	"go.uber.org/zap"
)

var (
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	graph, err := datastructure.NewDefaultGraph()
	if err != nil {
		panic(err)
	}
	routingEngine := routing.NewEngine(graph, logger)

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, *leafBoundingBoxRadius, logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, routingEngine, rtree)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, false, routingService)

	signal := http.GracefulShutdown()

	logger.Info("waypointd Routing Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

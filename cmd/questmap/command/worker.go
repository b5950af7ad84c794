package command

import (
	"fmt"

	"github.com/pixil98/go-questmap/internal/driver"
	"github.com/pixil98/go-questmap/internal/messaging"
	"github.com/pixil98/go-questmap/internal/world"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the simulated host
	dict, err := cfg.Storage.BuildDictionary()
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}
	w, err := world.NewWorld(dict)
	if err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}

	mappings, err := cfg.Storage.BuildMappings()
	if err != nil {
		return nil, fmt.Errorf("building location mappings: %w", err)
	}

	// Frames go out over nats
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	manager, err := cfg.Tracker.BuildManager(w, mappings, messaging.NewFramePublisher(natsServer))
	if err != nil {
		return nil, fmt.Errorf("creating tracker: %w", err)
	}

	// The world moves first so every tracker pass sees the current tick
	tickDriver := driver.NewTickDriver([]driver.Manager{
		w,
		manager,
	}, driver.WithTickLength(cfg.tickLength()))

	// Create a worker list
	return service.WorkerList{
		"nats":    natsServer,
		"control": messaging.NewControlListener(natsServer, manager),
		"driver":  tickDriver,
	}, nil
}

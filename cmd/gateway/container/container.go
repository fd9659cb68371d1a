package container

import (
	"github.com/lyzr/docgateway/cmd/gateway/service"
	"github.com/lyzr/docgateway/common/bootstrap"
	"github.com/lyzr/docgateway/common/extract"
)

// Container holds all initialized services (singleton pattern)
type Container struct {
	// Components
	Components *bootstrap.Components

	// Services
	Documents *service.DocumentService
}

// NewContainer initializes all services once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	extractor := extract.NewExtractor(components.Logger)

	documents := service.NewDocumentService(
		components.Blob,
		extractor,
		components.Telemetry,
		components.Logger,
	)

	return &Container{
		Components: components,
		Documents:  documents,
	}, nil
}

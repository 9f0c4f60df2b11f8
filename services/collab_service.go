//go:generate go run go.uber.org/mock/mockgen -source=collab_service.go -destination=../mocks/mock_collab_service.go -package=mocks
package services

import (
	"cooksync/contract"
	"cooksync/domain"
	"cooksync/runtime"
)

type ICollabService interface {
	Connect(identity domain.Identity, sink contract.EventSink)
	Disconnect(userID string)
	Dispatch(cmd domain.Command)
	ConnectionCount() int
}

// CollabService is the thin facade the transport talks to. Everything
// stateful happens in the coordinator; this type only routes.
type CollabService struct {
	coordinator *runtime.Coordinator
	registry    contract.IRegistry
}

func NewCollabService(coordinator *runtime.Coordinator, registry contract.IRegistry) *CollabService {
	return &CollabService{coordinator: coordinator, registry: registry}
}

func (s *CollabService) Connect(identity domain.Identity, sink contract.EventSink) {
	s.coordinator.Connect(identity, sink)
}

func (s *CollabService) Disconnect(userID string) {
	s.coordinator.Disconnect(userID)
}

func (s *CollabService) Dispatch(cmd domain.Command) {
	s.coordinator.Dispatch(cmd)
}

func (s *CollabService) ConnectionCount() int {
	return s.registry.Count()
}

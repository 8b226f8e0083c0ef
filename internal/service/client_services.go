package service

import (
	"github.com/MKhiriev/go-fin-simulator/internal/adapter"
	"github.com/MKhiriev/go-fin-simulator/internal/logger"
	"github.com/MKhiriev/go-fin-simulator/internal/session"
)

type ClientServices struct {
	AuthService       ClientAuthService
	SimulationService ClientSimulationService
	Session           *session.Session
}

func NewClientServices(sess *session.Session, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:       NewClientAuthService(serverAdapter, sess, logger),
		SimulationService: NewClientSimulationService(serverAdapter, logger),
		Session:           sess,
	}
}

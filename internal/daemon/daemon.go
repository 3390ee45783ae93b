// Package daemon runs watch mode under the system service manager.
package daemon

import (
	"github.com/kardianos/service"
)

type program struct {
	run func()
}

func (p *program) Start(_ service.Service) error {
	go p.run()
	return nil
}

func (p *program) Stop(_ service.Service) error {
	return nil
}

// New registers run with the service manager and blocks until the
// service is stopped.
func New(run func()) error {
	svc, err := service.New(&program{run: run}, &service.Config{
		Name:        "freeproxy",
		DisplayName: "freeproxy",
		Description: "Periodic free proxy list auditor",
	})
	if err != nil {
		return err
	}

	return svc.Run()
}

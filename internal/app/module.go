package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/gostaff/internal/employee"
	"github.com/shandysiswandi/gostaff/internal/staff"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.employee.enabled") {
		if err := employee.New(employee.Dependency{
			Router:     a.router,
			Validator:  a.validator,
			Clock:      a.clock,
			Instrument: a.ins,
		}); err != nil {
			slog.Error("failed to init module employee", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.staff.enabled") {
		if err := staff.New(staff.Dependency{
			Router:     a.router,
			Validator:  a.validator,
			Instrument: a.ins,
		}); err != nil {
			slog.Error("failed to init module staff", "error", err)
			os.Exit(1)
		}
	}
}

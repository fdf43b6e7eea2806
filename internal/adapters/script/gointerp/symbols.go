package gointerp

import (
	"reflect"

	"github.com/traefik/yaegi/interp"
	"go.trai.ch/osw/internal/adapters/script/gointerp/measure"
	"go.trai.ch/osw/internal/core/domain"
)

const (
	measurePkg    = "osw/measure/measure"
	introspectPkg = "osw/introspect/introspect"
)

// symbols exports the measure API bound to reg. Each loaded script gets its own registry.
func symbols(reg *measure.Registry) interp.Exports {
	return interp.Exports{
		measurePkg: {
			"Register":          reflect.ValueOf(reg.Register),
			"ModelMeasure":      reflect.ValueOf((*measure.ModelMeasure)(nil)),
			"EnergyPlusMeasure": reflect.ValueOf((*measure.EnergyPlusMeasure)(nil)),
			"ReportingMeasure":  reflect.ValueOf((*measure.ReportingMeasure)(nil)),

			"Model":           reflect.ValueOf((*domain.Model)(nil)),
			"ModelObject":     reflect.ValueOf((*domain.ModelObject)(nil)),
			"Workspace":       reflect.ValueOf((*domain.Workspace)(nil)),
			"WorkspaceObject": reflect.ValueOf((*domain.WorkspaceObject)(nil)),
			"Runner":          reflect.ValueOf((*domain.Recorder)(nil)),
			"Argument":        reflect.ValueOf((*domain.Argument)(nil)),
			"Arguments":       reflect.ValueOf((*domain.ArgumentMap)(nil)),
			"ArgumentType":    reflect.ValueOf((*domain.ArgumentType)(nil)),
			"OutputAttribute": reflect.ValueOf((*domain.OutputAttribute)(nil)),

			"Boolean": reflect.ValueOf(domain.ArgBoolean),
			"Double":  reflect.ValueOf(domain.ArgDouble),
			"Integer": reflect.ValueOf(domain.ArgInteger),
			"String":  reflect.ValueOf(domain.ArgString),
			"Choice":  reflect.ValueOf(domain.ArgChoice),
			"Path":    reflect.ValueOf(domain.ArgPath),
		},
		introspectPkg: {
			"Classes": reflect.ValueOf(reg.Classes),
		},
	}
}

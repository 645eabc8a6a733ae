package filter_locations

import (
	"context"

	filterLocations "github.com/skillhub/SkillHub-SchedulingService/internal/usecase/filter_locations"
)

type FilterLocationsUseCase interface {
	Execute(ctx context.Context, req *filterLocations.Request) (*filterLocations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

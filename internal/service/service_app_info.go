package service

import "context"

// appInfoService reports static build information.
type appInfoService struct {
	version string
}

// NewAppInfoService constructs an AppInfoService reporting the given
// version string.
func NewAppInfoService(version string) AppInfoService {
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{version: version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}

package platform_test

import (
	"runtime"
	"testing"

	"github.com/gracelang/mason/internal/adapters/platform"
	"github.com/gracelang/mason/internal/core/domain"
	"github.com/gracelang/mason/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDetectFor(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		wantFamily domain.Family
		wantWarn   bool
	}{
		{
			name:       "linux gets the posix profile",
			goos:       "linux",
			wantFamily: domain.FamilyPosix,
		},
		{
			name:       "darwin gets the posix profile",
			goos:       "darwin",
			wantFamily: domain.FamilyPosix,
		},
		{
			name:       "windows gets the windows profile",
			goos:       "windows",
			wantFamily: domain.FamilyWindows,
		},
		{
			name:       "unrecognized os falls back to posix with a warning",
			goos:       "plan9",
			wantFamily: domain.FamilyPosix,
			wantWarn:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			if tt.wantWarn {
				log.EXPECT().Warn(gomock.Any()).Times(1)
			}

			profile := platform.DetectFor(tt.goos, log)
			assert.Equal(t, tt.wantFamily, profile.Family)
		})
	}
}

func TestDetectFor_Profiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	posix := platform.DetectFor("linux", log)
	require.True(t, posix.SupportsParallelism())
	assert.Empty(t, posix.ExecutableSuffix)
	assert.False(t, posix.NestedConfigDir)
	assert.False(t, posix.PathUpdateNeeded)

	windows := platform.DetectFor("windows", log)
	require.False(t, windows.SupportsParallelism())
	assert.Equal(t, ".exe", windows.ExecutableSuffix)
	assert.True(t, windows.NestedConfigDir)
	assert.True(t, windows.PathUpdateNeeded)
}

func TestDetect_Host(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	profile := platform.Detect(log)
	if runtime.GOOS == "windows" {
		assert.Equal(t, domain.FamilyWindows, profile.Family)
	} else {
		assert.Equal(t, domain.FamilyPosix, profile.Family)
	}
}

package displayconfig

import (
	"errors"
	"testing"

	"github.com/genricoloni/gpuprobe/internal/domain"
	"github.com/genricoloni/gpuprobe/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	config   *mocks.MockDisplayConfig
	settings *mocks.MockDisplaySettings
	contexts *mocks.MockDeviceContexts
	resolver *Resolver
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		config:   mocks.NewMockDisplayConfig(ctrl),
		settings: mocks.NewMockDisplaySettings(ctrl),
		contexts: mocks.NewMockDeviceContexts(ctrl),
	}
	f.resolver = NewResolver(zap.NewNop(), f.config, f.settings, f.contexts)
	return f
}

func TestSDRWhiteLevelNits(t *testing.T) {
	tests := []struct {
		raw  uint32
		want float32
	}{
		{1000, 80},
		{0, 0},
		{1250, 100},
		{2500, 200},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SDRWhiteLevelNits(tt.raw), "raw %d", tt.raw)
	}
}

func TestActivePaths_RetriesOnInsufficientBuffer(t *testing.T) {
	f := newFixture(t)
	want := []domain.DisplayPath{{SourceID: 1}}

	gomock.InOrder(
		f.config.EXPECT().BufferSizes().Return(uint32(1), uint32(2), nil),
		f.config.EXPECT().QueryActivePaths(uint32(1), uint32(2)).Return(nil, domain.ErrInsufficientBuffer),
		f.config.EXPECT().BufferSizes().Return(uint32(2), uint32(4), nil),
		f.config.EXPECT().QueryActivePaths(uint32(2), uint32(4)).Return(want, nil),
	)

	paths, err := f.resolver.ActivePaths()
	require.NoError(t, err)
	assert.Equal(t, want, paths)
}

func TestActivePaths_Bounded(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().BufferSizes().Return(uint32(1), uint32(1), nil).Times(maxQueryAttempts)
	f.config.EXPECT().QueryActivePaths(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInsufficientBuffer).Times(maxQueryAttempts)

	_, err := f.resolver.ActivePaths()
	assert.ErrorIs(t, err, ErrTopologyUnstable)
}

func TestActivePaths_SizeQueryFails(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().BufferSizes().Return(uint32(0), uint32(0), domain.ErrUnsupported)

	_, err := f.resolver.ActivePaths()
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestMatchPaths(t *testing.T) {
	f := newFixture(t)
	paths := []domain.DisplayPath{{SourceID: 0}, {SourceID: 1}, {SourceID: 2}}

	f.config.EXPECT().SourceDeviceName(paths[0]).Return(`\\.\DISPLAY1`, nil)
	f.config.EXPECT().SourceDeviceName(paths[1]).Return("", errors.New("gone"))
	f.config.EXPECT().SourceDeviceName(paths[2]).Return(`\\.\DISPLAY2`, nil)

	got := f.resolver.MatchPaths(paths, `\\.\DISPLAY2`)
	assert.Equal(t, []domain.DisplayPath{{SourceID: 2}}, got)
}

func TestMatchPaths_EmptyDeviceName(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, f.resolver.MatchPaths([]domain.DisplayPath{{}}, ""))
}

func TestSDRWhiteLevel_FirstAnsweringPath(t *testing.T) {
	f := newFixture(t)
	paths := []domain.DisplayPath{{TargetID: 1}, {TargetID: 2}}

	f.config.EXPECT().SDRWhiteLevel(paths[0]).Return(uint32(0), errors.New("not ready"))
	f.config.EXPECT().SDRWhiteLevel(paths[1]).Return(uint32(3000), nil)

	assert.Equal(t, domain.Found(float32(240)), f.resolver.SDRWhiteLevel(paths))
}

func TestSDRWhiteLevel_Default(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, domain.Default(domain.DefaultSDRWhiteLevel), f.resolver.SDRWhiteLevel(nil))
}

func TestFriendlyName(t *testing.T) {
	f := newFixture(t)
	paths := []domain.DisplayPath{{TargetID: 7}}
	f.config.EXPECT().TargetFriendlyName(paths[0]).Return("DELL U2720Q", nil)

	assert.Equal(t, domain.Found("DELL U2720Q"), f.resolver.FriendlyName(paths))
}

func TestFriendlyName_AllFail(t *testing.T) {
	f := newFixture(t)
	paths := []domain.DisplayPath{{TargetID: 7}}
	f.config.EXPECT().TargetFriendlyName(paths[0]).Return("", errors.New("denied"))

	core, logs := observer.New(zapcore.WarnLevel)
	f.resolver.logger = zap.New(core)

	got := f.resolver.FriendlyName(paths)
	assert.False(t, got.OK)
	assert.Equal(t, 1, logs.FilterField(zap.String("op", "DisplayConfigGetDeviceInfo")).Len())
}

func TestRefreshRate_PathWinsWithoutLegacyCalls(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().CurrentFrequency(gomock.Any()).Times(0)
	f.contexts.EXPECT().Create(gomock.Any()).Times(0)

	paths := []domain.DisplayPath{
		{TargetRefresh: domain.Rational{Numerator: 0, Denominator: 1}},
		{TargetRefresh: domain.Rational{Numerator: 144000, Denominator: 1000}},
	}
	assert.Equal(t, domain.Found(float32(144)), f.resolver.RefreshRate(`\\.\DISPLAY1`, paths))
}

func TestRefreshRate_DisplaySettings(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().CurrentFrequency(`\\.\DISPLAY1`).Return(uint32(75), nil)
	f.contexts.EXPECT().Create(gomock.Any()).Times(0)

	paths := []domain.DisplayPath{{TargetRefresh: domain.Rational{Numerator: 60, Denominator: 0}}}
	assert.Equal(t, domain.Found(float32(75)), f.resolver.RefreshRate(`\\.\DISPLAY1`, paths))
}

func TestRefreshRate_DeviceContext(t *testing.T) {
	tests := []struct {
		name      string
		frequency uint32
		freqErr   error
	}{
		{"hardware default 0", 0, nil},
		{"hardware default 1", 1, nil},
		{"settings unavailable", 0, domain.ErrUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			dc := domain.DeviceContextHandle(0x1234)

			f.settings.EXPECT().CurrentFrequency(`\\.\DISPLAY3`).Return(tt.frequency, tt.freqErr)
			gomock.InOrder(
				f.contexts.EXPECT().Create(`\\.\DISPLAY3`).Return(dc, nil),
				f.contexts.EXPECT().VerticalRefresh(dc).Return(int32(59)),
				f.contexts.EXPECT().Delete(dc).Return(nil),
			)

			assert.Equal(t, domain.Found(float32(59)), f.resolver.RefreshRate(`\\.\DISPLAY3`, nil))
		})
	}
}

func TestRefreshRate_DeviceContextReleasedOnDegenerateValue(t *testing.T) {
	f := newFixture(t)
	dc := domain.DeviceContextHandle(0x99)

	f.settings.EXPECT().CurrentFrequency(gomock.Any()).Return(uint32(1), nil)
	f.contexts.EXPECT().Create(gomock.Any()).Return(dc, nil)
	f.contexts.EXPECT().VerticalRefresh(dc).Return(int32(1))
	f.contexts.EXPECT().Delete(dc).Return(errors.New("busy")).Times(1)

	assert.Equal(t, domain.Default(domain.DefaultRefreshRate), f.resolver.RefreshRate(`\\.\DISPLAY1`, nil))
}

func TestRefreshRate_NoDeviceName(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().CurrentFrequency(gomock.Any()).Times(0)
	f.contexts.EXPECT().Create(gomock.Any()).Times(0)

	assert.Equal(t, domain.Default(domain.DefaultRefreshRate), f.resolver.RefreshRate("", nil))
}

func TestPaths(t *testing.T) {
	f := newFixture(t)
	all := []domain.DisplayPath{{SourceID: 0}, {SourceID: 1}}

	f.config.EXPECT().BufferSizes().Return(uint32(2), uint32(2), nil)
	f.config.EXPECT().QueryActivePaths(uint32(2), uint32(2)).Return(all, nil)
	f.config.EXPECT().SourceDeviceName(all[0]).Return(`\\.\DISPLAY1`, nil)
	f.config.EXPECT().SourceDeviceName(all[1]).Return(`\\.\DISPLAY1`, nil)

	assert.Len(t, f.resolver.Paths(`\\.\DISPLAY1`), 2)
}

func TestPaths_Unsupported(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().BufferSizes().Return(uint32(0), uint32(0), domain.ErrUnsupported)

	core, logs := observer.New(zapcore.WarnLevel)
	f.resolver.logger = zap.New(core)

	assert.Nil(t, f.resolver.Paths(`\\.\DISPLAY1`))
	assert.Zero(t, logs.Len())
}

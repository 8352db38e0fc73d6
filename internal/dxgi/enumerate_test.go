package dxgi

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

func newAdapterMock(ctrl *gomock.Controller, desc domain.AdapterDescriptor, budget uint64, budgetErr error) *mocks.MockGraphicsAdapter {
	a := mocks.NewMockGraphicsAdapter(ctrl)
	a.EXPECT().Descriptor().Return(desc, nil).AnyTimes()
	a.EXPECT().NonLocalMemoryBudget().Return(budget, budgetErr).AnyTimes()
	a.EXPECT().Release().AnyTimes()
	return a
}

func TestAdapters_StopsAtNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockGraphicsFactory(ctrl)

	first := newAdapterMock(ctrl, domain.AdapterDescriptor{Description: "Discrete"}, 1<<30, nil)
	second := newAdapterMock(ctrl, domain.AdapterDescriptor{Description: "Integrated"}, 0, nil)

	factory.EXPECT().EnumAdapter(uint32(0)).Return(first, nil).Times(2)
	factory.EXPECT().EnumAdapter(uint32(1)).Return(second, nil).Times(2)
	factory.EXPECT().EnumAdapter(uint32(2)).Return(nil, domain.ErrNotFound).Times(2)

	e := NewEnumerator(zap.NewNop())

	// Iterating twice must yield the same adapters in the same order.
	for range 2 {
		var got []domain.AdapterDescriptor
		for a := range e.Adapters(factory) {
			got = append(got, a.Descriptor)
		}
		require.Len(t, got, 2)
		assert.Equal(t, uint32(0), got[0].Index)
		assert.Equal(t, "Discrete", got[0].Description)
		assert.Equal(t, domain.Found(false), got[0].Integrated)
		assert.Equal(t, uint32(1), got[1].Index)
		assert.Equal(t, domain.Found(true), got[1].Integrated)
	}
}

func TestAdapters_SkipsBrokenDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockGraphicsFactory(ctrl)

	broken := mocks.NewMockGraphicsAdapter(ctrl)
	broken.EXPECT().Descriptor().Return(domain.AdapterDescriptor{}, errors.New("device removed"))
	broken.EXPECT().Release().Times(1)

	healthy := newAdapterMock(ctrl, domain.AdapterDescriptor{Description: "Healthy"}, 0, domain.ErrUnsupported)

	factory.EXPECT().EnumAdapter(uint32(0)).Return(broken, nil)
	factory.EXPECT().EnumAdapter(uint32(1)).Return(healthy, nil)
	factory.EXPECT().EnumAdapter(uint32(2)).Return(nil, domain.ErrNotFound)

	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEnumerator(zap.New(core))

	var got []Adapter
	for a := range e.Adapters(factory) {
		got = append(got, a)
	}

	require.Len(t, got, 1)
	assert.Equal(t, uint32(1), got[0].Descriptor.Index)
	assert.Equal(t, domain.Default(false), got[0].Descriptor.Integrated)
	assert.Equal(t, 1, logs.FilterMessage("Skipping adapter").Len())
}

func TestAdapters_ReleasesOnEarlyBreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockGraphicsFactory(ctrl)

	a := mocks.NewMockGraphicsAdapter(ctrl)
	a.EXPECT().Descriptor().Return(domain.AdapterDescriptor{}, nil)
	a.EXPECT().NonLocalMemoryBudget().Return(uint64(0), domain.ErrUnsupported)
	a.EXPECT().Release().Times(1)

	factory.EXPECT().EnumAdapter(uint32(0)).Return(a, nil)

	e := NewEnumerator(zap.NewNop())
	for range e.Adapters(factory) {
		break
	}
}

func TestAdapters_AbortsOnUnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mocks.NewMockGraphicsFactory(ctrl)
	factory.EXPECT().EnumAdapter(uint32(0)).Return(nil, errors.New("invalid call"))

	core, logs := observer.New(zapcore.WarnLevel)
	e := NewEnumerator(zap.New(core))

	count := 0
	for range e.Adapters(factory) {
		count++
	}
	assert.Zero(t, count)
	assert.Equal(t, 1, logs.FilterMessage("Adapter enumeration aborted").Len())
}

func TestOutputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockGraphicsAdapter(ctrl)

	plain := mocks.NewMockDisplayOutput(ctrl)
	plain.EXPECT().Descriptor().Return(domain.OutputDescriptor{DeviceName: `\\.\DISPLAY1`}, nil)
	plain.EXPECT().DisplayModes(domain.FormatR8G8B8A8Unorm).Return([]domain.Rational{
		{Numerator: 60000, Denominator: 1000},
		{Numerator: 143981, Denominator: 1000},
		{Numerator: 1, Denominator: 0},
	}, nil)
	plain.EXPECT().ExtendedDescriptor().Return(domain.ExtendedOutput{}, domain.ErrUnsupported)
	plain.EXPECT().Release().Times(1)

	broken := mocks.NewMockDisplayOutput(ctrl)
	broken.EXPECT().Descriptor().Return(domain.OutputDescriptor{}, errors.New("lost"))
	broken.EXPECT().Release().Times(1)

	hdr := mocks.NewMockDisplayOutput(ctrl)
	hdr.EXPECT().Descriptor().Return(domain.OutputDescriptor{DeviceName: `\\.\DISPLAY2`}, nil)
	hdr.EXPECT().DisplayModes(domain.FormatR8G8B8A8Unorm).Return(nil, domain.ErrUnsupported)
	hdr.EXPECT().ExtendedDescriptor().Return(domain.ExtendedOutput{
		BitsPerColor: 10,
		ColorSpace:   domain.ColorSpaceRGBFullG2084NoneP2020,
		MaxLuminance: 1000,
	}, nil)
	hdr.EXPECT().Release().Times(1)

	adapter.EXPECT().EnumOutput(uint32(0)).Return(plain, nil)
	adapter.EXPECT().EnumOutput(uint32(1)).Return(broken, nil)
	adapter.EXPECT().EnumOutput(uint32(2)).Return(hdr, nil)
	adapter.EXPECT().EnumOutput(uint32(3)).Return(nil, domain.ErrNotFound)

	e := NewEnumerator(zap.NewNop())

	var got []domain.OutputDescriptor
	for o := range e.Outputs(adapter) {
		got = append(got, o.Descriptor)
	}

	require.Len(t, got, 2)

	assert.Equal(t, uint32(0), got[0].Index)
	assert.InDelta(t, 143.981, got[0].MaxRefreshRate, 0.001)
	assert.Nil(t, got[0].Extended)

	assert.Equal(t, uint32(2), got[1].Index)
	assert.Equal(t, domain.DefaultRefreshRate, got[1].MaxRefreshRate)
	require.NotNil(t, got[1].Extended)
	assert.Equal(t, uint32(10), got[1].Extended.BitsPerColor)
}

func TestMaxRefreshRate(t *testing.T) {
	tests := []struct {
		name  string
		modes []domain.Rational
		want  float32
	}{
		{"no modes", nil, 60},
		{"all below default", []domain.Rational{{Numerator: 50, Denominator: 1}}, 60},
		{"fractional", []domain.Rational{{Numerator: 120000, Denominator: 1001}}, 120000.0 / 1001.0},
		{"zero denominator ignored", []domain.Rational{{Numerator: 240, Denominator: 0}}, 60},
		{"highest wins", []domain.Rational{
			{Numerator: 144, Denominator: 1},
			{Numerator: 165, Denominator: 1},
			{Numerator: 75, Denominator: 1},
		}, 165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxRefreshRate(tt.modes))
		})
	}
}

func TestVariableRefreshSupported(t *testing.T) {
	tests := []struct {
		name    string
		allowed bool
		err     error
		want    bool
	}{
		{"supported", true, nil, true},
		{"not supported", false, nil, false},
		{"no capability query", false, domain.ErrUnsupported, false},
		{"query failed", true, errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			factory := mocks.NewMockGraphicsFactory(ctrl)
			factory.EXPECT().AllowTearing().Return(tt.allowed, tt.err).Times(1)

			e := NewEnumerator(zap.NewNop())
			assert.Equal(t, tt.want, e.VariableRefreshSupported(factory))
		})
	}
}

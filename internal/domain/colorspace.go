package domain

// Rotation is the orientation of an output (DXGI_MODE_ROTATION)
type Rotation uint32

const (
	RotationUnspecified Rotation = iota
	RotationIdentity
	Rotation90
	Rotation180
	Rotation270
)

// String returns the rotation in degrees, or a word when no angle applies
func (r Rotation) String() string {
	switch r {
	case RotationUnspecified:
		return "Unspecified"
	case RotationIdentity:
		return "0"
	case Rotation90:
		return "90"
	case Rotation180:
		return "180"
	case Rotation270:
		return "270"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the rotation as its String form
func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ColorSpace is a DXGI_COLOR_SPACE_TYPE value
type ColorSpace uint32

// Known DXGI colour spaces, numbered as in dxgicommon.h
const (
	ColorSpaceRGBFullG22NoneP709           ColorSpace = 0
	ColorSpaceRGBFullG10NoneP709           ColorSpace = 1
	ColorSpaceRGBStudioG22NoneP709         ColorSpace = 2
	ColorSpaceRGBStudioG22NoneP2020        ColorSpace = 3
	ColorSpaceYCbCrFullG22NoneP709X601     ColorSpace = 5
	ColorSpaceYCbCrStudioG22LeftP601       ColorSpace = 6
	ColorSpaceYCbCrFullG22LeftP601         ColorSpace = 7
	ColorSpaceYCbCrStudioG22LeftP709       ColorSpace = 8
	ColorSpaceYCbCrFullG22LeftP709         ColorSpace = 9
	ColorSpaceYCbCrStudioG22LeftP2020      ColorSpace = 10
	ColorSpaceYCbCrFullG22LeftP2020        ColorSpace = 11
	ColorSpaceRGBFullG2084NoneP2020        ColorSpace = 12
	ColorSpaceYCbCrStudioG2084LeftP2020    ColorSpace = 13
	ColorSpaceRGBStudioG2084NoneP2020      ColorSpace = 14
	ColorSpaceYCbCrStudioG22TopLeftP2020   ColorSpace = 15
	ColorSpaceYCbCrStudioG2084TopLeftP2020 ColorSpace = 16
	ColorSpaceRGBFullG22NoneP2020          ColorSpace = 17
	ColorSpaceYCbCrStudioGHLGTopLeftP2020  ColorSpace = 18
	ColorSpaceYCbCrFullGHLGTopLeftP2020    ColorSpace = 19
	ColorSpaceRGBStudioG24NoneP709         ColorSpace = 20
	ColorSpaceRGBStudioG24NoneP2020        ColorSpace = 21
	ColorSpaceYCbCrStudioG24LeftP709       ColorSpace = 22
	ColorSpaceYCbCrStudioG24LeftP2020      ColorSpace = 23
	ColorSpaceYCbCrStudioG24TopLeftP2020   ColorSpace = 24
)

var colorSpaceNames = map[ColorSpace]string{
	ColorSpaceRGBFullG22NoneP709:           "[sRGB] RGB (0-255), gamma: 2.2, siting: image, primaries: BT.709",
	ColorSpaceRGBFullG10NoneP709:           "[scRGB] RGB (0-255), gamma: 1.0, siting: image, primaries: BT.709",
	ColorSpaceRGBStudioG22NoneP709:         "[ITU-R] RGB (16-235), gamma: 2.2, siting: image, primaries: BT.709",
	ColorSpaceRGBStudioG22NoneP2020:        "[HDR] RGB (16-235), gamma: 2.2, siting: image, primaries: BT.2020",
	ColorSpaceYCbCrFullG22NoneP709X601:     "YCbCr (0-255), gamma: 2.2, siting: image, primaries: BT.709, transfer matrix: BT.601",
	ColorSpaceYCbCrStudioG22LeftP601:       "YCbCr (16-235), gamma: 2.2, siting: video, primaries: BT.601",
	ColorSpaceYCbCrFullG22LeftP601:         "YCbCr (0-255), gamma: 2.2, siting: video, primaries: BT.601",
	ColorSpaceYCbCrStudioG22LeftP709:       "YCbCr (16-235), gamma: 2.2, siting: video, primaries: BT.709",
	ColorSpaceYCbCrFullG22LeftP709:         "YCbCr (0-255), gamma: 2.2, siting: video, primaries: BT.709",
	ColorSpaceYCbCrStudioG22LeftP2020:      "[HDR] YCbCr (16-235), gamma: 2.2, siting: video, primaries: BT.2020",
	ColorSpaceYCbCrFullG22LeftP2020:        "[HDR] YCbCr (0-255), gamma: 2.2, siting: video, primaries: BT.2020",
	ColorSpaceRGBFullG2084NoneP2020:        "[HDR] RGB (0-255), gamma: 2084, siting: image, primaries: BT.2020",
	ColorSpaceYCbCrStudioG2084LeftP2020:    "[HDR] YCbCr (16-235), gamma: 2084, siting: video, primaries: BT.2020",
	ColorSpaceRGBStudioG2084NoneP2020:      "[HDR] RGB (16-235), gamma: 2084, siting: image, primaries: BT.2020",
	ColorSpaceYCbCrStudioG22TopLeftP2020:   "[HDR] YCbCr (16-235), gamma: 2.2, siting: video, primaries: BT.2020",
	ColorSpaceYCbCrStudioG2084TopLeftP2020: "[HDR] YCbCr (16-235), gamma: 2084, siting: video, primaries: BT.2020",
	ColorSpaceRGBFullG22NoneP2020:          "[HDR] RGB (0-255), gamma: 2.2, siting: image, primaries: BT.2020",
	ColorSpaceYCbCrStudioGHLGTopLeftP2020:  "[HDR] YCbCr (16-235), gamma: HLG, siting: video, primaries: BT.2020",
	ColorSpaceYCbCrFullGHLGTopLeftP2020:    "[HDR] YCbCr (0-255), gamma: HLG, siting: video, primaries: BT.2020",
	ColorSpaceRGBStudioG24NoneP709:         "RGB (16-235), gamma: 2.4, siting: image, primaries: BT.709",
	ColorSpaceRGBStudioG24NoneP2020:        "[HDR] RGB (16-235), gamma: 2.4, siting: image, primaries: BT.2020",
	ColorSpaceYCbCrStudioG24LeftP709:       "YCbCr (16-235), gamma: 2.4, siting: video, primaries: BT.709",
	ColorSpaceYCbCrStudioG24LeftP2020:      "[HDR] YCbCr (16-235), gamma: 2.4, siting: video, primaries: BT.2020",
	ColorSpaceYCbCrStudioG24TopLeftP2020:   "[HDR] YCbCr (16-235), gamma: 2.4, siting: video, primaries: BT.2020",
}

// String describes the colour space range, gamma, siting and primaries
func (c ColorSpace) String() string {
	if name, ok := colorSpaceNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText encodes the colour space by description
func (c ColorSpace) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

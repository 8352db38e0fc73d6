package domain

// Vendor identifies a GPU vendor registered with PCI-SIG or Khronos
type Vendor int8

const (
	VendorUnknown Vendor = iota - 1

	// PCI-SIG registered vendors
	VendorAMD
	VendorApple
	VendorARM
	VendorGoogle
	VendorImgTec
	VendorIntel
	VendorMicrosoft
	VendorNvidia
	VendorQualcomm
	VendorSamsung
	VendorBroadcom
	VendorVMWare
	VendorVirtIO

	// Khronos registered vendors
	VendorVivante
	VendorVeriSilicon
	VendorKazan
	VendorCodePlay
	VendorMesa
	VendorPoCL
)

// Vendor IDs follow ANGLE's gpu_info_util table. Khronos IDs start above the
// 16-bit PCI range.
var vendorIDs = map[uint64]Vendor{
	0x0000:  VendorUnknown,
	0x1002:  VendorAMD,
	0x106B:  VendorApple,
	0x13B5:  VendorARM,
	0x1AE0:  VendorGoogle,
	0x1010:  VendorImgTec,
	0x8086:  VendorIntel,
	0x1414:  VendorMicrosoft,
	0x10DE:  VendorNvidia,
	0x5143:  VendorQualcomm,
	0x144D:  VendorSamsung,
	0x14E4:  VendorBroadcom,
	0x15AD:  VendorVMWare,
	0x1AF4:  VendorVirtIO,
	0x10001: VendorVivante,
	0x10002: VendorVeriSilicon,
	0x10003: VendorKazan,
	0x10004: VendorCodePlay,
	0x10005: VendorMesa,
	0x10006: VendorPoCL,
}

var vendorNames = map[Vendor]string{
	VendorUnknown:     "Unknown",
	VendorAMD:         "AMD",
	VendorApple:       "Apple",
	VendorARM:         "ARM",
	VendorGoogle:      "Google",
	VendorImgTec:      "Img Tec",
	VendorIntel:       "Intel",
	VendorMicrosoft:   "Microsoft",
	VendorNvidia:      "Nvidia",
	VendorQualcomm:    "Qualcomm",
	VendorSamsung:     "Samsung",
	VendorBroadcom:    "Broadcom",
	VendorVMWare:      "VMWare",
	VendorVirtIO:      "VirtIO",
	VendorVivante:     "Vivante",
	VendorVeriSilicon: "VeriSilicon",
	VendorKazan:       "Kazan",
	VendorCodePlay:    "CodePlay",
	VendorMesa:        "Mesa",
	VendorPoCL:        "PoCL",
}

// VendorFromID maps a vendor ID to a Vendor. Unregistered IDs map to
// VendorUnknown.
func VendorFromID(id uint64) Vendor {
	if v, ok := vendorIDs[id]; ok {
		return v
	}
	return VendorUnknown
}

// String returns the display name of the vendor
func (v Vendor) String() string {
	if name, ok := vendorNames[v]; ok {
		return name
	}
	return vendorNames[VendorUnknown]
}

// MarshalText encodes the vendor by name
func (v Vendor) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

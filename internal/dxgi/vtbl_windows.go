//go:build windows
// +build windows

package dxgi

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type iDXGIObjectVtbl struct {
	iUnknownVtbl

	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	GetPrivateData          uintptr
	GetParent               uintptr
}

type iDXGIFactoryVtbl struct {
	iDXGIObjectVtbl

	EnumAdapters          uintptr
	MakeWindowAssociation uintptr
	GetWindowAssociation  uintptr
	CreateSwapChain       uintptr
	CreateSoftwareAdapter uintptr
}

type iDXGIFactory1Vtbl struct {
	iDXGIFactoryVtbl

	EnumAdapters1 uintptr
	IsCurrent     uintptr
}

type iDXGIFactory2Vtbl struct {
	iDXGIFactory1Vtbl

	IsWindowedStereoEnabled       uintptr
	CreateSwapChainForHwnd        uintptr
	CreateSwapChainForCoreWindow  uintptr
	GetSharedResourceAdapterLuid  uintptr
	RegisterStereoStatusWindow    uintptr
	RegisterStereoStatusEvent     uintptr
	UnregisterStereoStatus        uintptr
	RegisterOcclusionStatusWindow uintptr
	RegisterOcclusionStatusEvent  uintptr
	UnregisterOcclusionStatus     uintptr
	CreateSwapChainForComposition uintptr
}

type iDXGIFactory3Vtbl struct {
	iDXGIFactory2Vtbl

	GetCreationFlags uintptr
}

type iDXGIFactory4Vtbl struct {
	iDXGIFactory3Vtbl

	EnumAdapterByLuid uintptr
	EnumWarpAdapter   uintptr
}

type iDXGIFactory5Vtbl struct {
	iDXGIFactory4Vtbl

	CheckFeatureSupport uintptr
}

type iDXGIAdapterVtbl struct {
	iDXGIObjectVtbl

	EnumOutputs           uintptr
	GetDesc               uintptr
	CheckInterfaceSupport uintptr
}

type iDXGIAdapter1Vtbl struct {
	iDXGIAdapterVtbl

	GetDesc1 uintptr
}

type iDXGIAdapter2Vtbl struct {
	iDXGIAdapter1Vtbl

	GetDesc2 uintptr
}

type iDXGIAdapter3Vtbl struct {
	iDXGIAdapter2Vtbl

	RegisterHardwareContentProtectionTeardownStatusEvent uintptr
	UnregisterHardwareContentProtectionTeardownStatus    uintptr
	QueryVideoMemoryInfo                                 uintptr
	SetVideoMemoryReservation                            uintptr
	RegisterVideoMemoryBudgetChangeNotificationEvent     uintptr
	UnregisterVideoMemoryBudgetChangeNotification        uintptr
}

type iDXGIOutputVtbl struct {
	iDXGIObjectVtbl

	GetDesc                     uintptr
	GetDisplayModeList          uintptr
	FindClosestMatchingMode     uintptr
	WaitForVBlank               uintptr
	TakeOwnership               uintptr
	ReleaseOwnership            uintptr
	GetGammaControlCapabilities uintptr
	SetGammaControl             uintptr
	GetGammaControl             uintptr
	SetDisplaySurface           uintptr
	GetDisplaySurfaceData       uintptr
	GetFrameStatistics          uintptr
}

type iDXGIOutput1Vtbl struct {
	iDXGIOutputVtbl

	GetDisplayModeList1      uintptr
	FindClosestMatchingMode1 uintptr
	GetDisplaySurfaceData1   uintptr
	DuplicateOutput          uintptr
}

type iDXGIOutput2Vtbl struct {
	iDXGIOutput1Vtbl

	SupportsOverlays uintptr
}

type iDXGIOutput3Vtbl struct {
	iDXGIOutput2Vtbl

	CheckOverlaySupport uintptr
}

type iDXGIOutput4Vtbl struct {
	iDXGIOutput3Vtbl

	CheckOverlayColorSpaceSupport uintptr
}

type iDXGIOutput5Vtbl struct {
	iDXGIOutput4Vtbl

	DuplicateOutput1 uintptr
}

type iDXGIOutput6Vtbl struct {
	iDXGIOutput5Vtbl

	GetDesc1                        uintptr
	CheckHardwareCompositionSupport uintptr
}

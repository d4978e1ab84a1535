package device

// Capabilities are the boolean capability signals of an environment.
type Capabilities struct {
	IsTouch      bool
	IsRetina     bool
	IsStandalone bool
}

// DetectCapabilities derives touch, retina and standalone flags.
func DetectCapabilities(env Environment) Capabilities {
	touch := env.Touch()
	standalone := env.Standalone()
	return Capabilities{
		IsTouch:      touch.Events || touch.MaxTouchPoints > 0,
		IsRetina:     env.PixelRatio() > 1,
		IsStandalone: standalone.DisplayMode || standalone.Navigator,
	}
}

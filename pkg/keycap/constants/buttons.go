package constants

// VirtualButton is a device-independent button. Physical keys, controller
// buttons, hats and axes are mapped onto these by the input mapping.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var virtualButtonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

// GetName returns the display name of the button, or "Unknown".
func (vb VirtualButton) GetName() string {
	if name, ok := virtualButtonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// IsDirectional reports whether the button is one of the d-pad directions.
func (vb VirtualButton) IsDirectional() bool {
	return vb == VirtualButtonUp || vb == VirtualButtonDown ||
		vb == VirtualButtonLeft || vb == VirtualButtonRight
}

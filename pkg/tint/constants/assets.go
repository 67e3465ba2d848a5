package constants

// Built-in asset identifiers. Names follow the material asset set they
// stand for; the numeric values are stable and used by asset manifests.
const (
	AssetUnknown AssetID = iota

	// Alpha-mask icons tinted with colorControlNormal.
	IconBack         // Action bar up/back arrow
	IconGoSearch     // Search "go" arrow
	IconSearch       // Magnifying glass
	IconCommitSearch // Commit search suggestion
	IconClear        // Clear text
	IconMenuShare    // Share
	IconMenuOverflow // Overflow (three dots)
	IconVoiceSearch  // Microphone
	TextFieldSearchDefault
	TextFieldDefault
	ListDivider

	// Tinted with colorControlActivated.
	TextFieldActivated
	ActionBarBackgroundTop

	// Tinted with colorBackground using multiply.
	PopupBackground
	ActionBarBackgroundInternal

	// Tinted with a normal/activated/disabled state list.
	EditText
	TabIndicator
	TextFieldSearch
	Spinner

	// Layered asset whose children are tinted individually.
	ActionBarBackgroundTopLayered
)

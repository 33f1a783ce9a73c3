package notify

// DefaultSoundName is the platform's default notification sound resource.
const DefaultSoundName = "default"

// AlertStyle describes how a notification announces itself: an optional
// sound resource and an optional vibration. Both unset denotes silence;
// no combination is invalid. Treat values as immutable once constructed.
type AlertStyle struct {
	// Sound names the sound resource to play, or "" for no sound.
	Sound string
	// Vibrate requests a one-shot vibration alongside delivery.
	Vibrate bool
}

// Named presets covering the common sound/vibration combinations.
var (
	// StyleDefaultSound plays the default sound without vibration.
	StyleDefaultSound = AlertStyle{Sound: DefaultSoundName}

	// StyleDefaultSoundAndVibrate plays the default sound and vibrates.
	StyleDefaultSoundAndVibrate = AlertStyle{Sound: DefaultSoundName, Vibrate: true}

	// StyleVibrateOnly vibrates without playing a sound.
	StyleVibrateOnly = AlertStyle{Vibrate: true}

	// StyleSilent neither plays a sound nor vibrates.
	StyleSilent = AlertStyle{}
)

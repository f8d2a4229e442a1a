package component

// Zone is a pointer-sensitive region reported by the host
type Zone uint8

const (
	// ZoneGallery is the whole play area, aiming is valid inside it
	ZoneGallery Zone = iota
	// ZoneTarget is the target footprint, a shot fired inside it hits
	ZoneTarget
)

func (z Zone) String() string {
	switch z {
	case ZoneGallery:
		return "gallery"
	case ZoneTarget:
		return "target"
	default:
		return "unknown"
	}
}

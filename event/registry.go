package event

import (
	"strings"
)

var (
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)
)

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[strings.ToLower(name)]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

func (et EventType) String() string {
	return GetEventName(et)
}

func init() {
	RegisterType("None", EventNone)
	RegisterType("PlayerRespawn", EventPlayerRespawn)
	RegisterType("EnemyReactivate", EventEnemyReactivate)
	RegisterType("Explosion", EventExplosion)
	RegisterType("SoundRequest", EventSoundRequest)
	RegisterType("Message", EventMessage)
	RegisterType("GameOver", EventGameOver)
}

package systems

import (
	"fmt"
	"image/color"

	"archipelago/ecs"
	"archipelago/world"
)

// MessageType selects the color a message is drawn in
type MessageType int

const (
	MessageTypeNormal MessageType = iota
	MessageTypeEnvironment
	MessageTypeCombat
	MessageTypeAlert
)

var messageColors = map[MessageType]color.RGBA{
	MessageTypeNormal:      {200, 200, 200, 255},
	MessageTypeEnvironment: {120, 200, 255, 255},
	MessageTypeCombat:      {255, 110, 90, 255},
	MessageTypeAlert:       {255, 230, 60, 255},
}

// ColoredMessage is one log line and its type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// Color is the display color of the message, gray for unknown types
func (cm ColoredMessage) Color() color.RGBA {
	if c, ok := messageColors[cm.Type]; ok {
		return c
	}
	return messageColors[MessageTypeNormal]
}

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = nil
}

// Subscribe registers handlers that narrate game events into the log
func (ml *MessageLog) Subscribe(events *ecs.EventManager) {
	events.Subscribe(world.EventLevelGenerated, func(e ecs.Event) {
		ev := e.(world.LevelGeneratedEvent)
		ml.AddColored(fmt.Sprintf("A new archipelago rises: %d islands, %d creatures.", ev.Islands, ev.Creatures),
			MessageTypeEnvironment)
	})
	events.Subscribe(world.EventEntityHit, func(e ecs.Event) {
		ev := e.(world.EntityHitEvent)
		if ev.TargetKind == world.KindCreature && ev.Health > 0 {
			ml.AddColored("You hit the creature.", MessageTypeCombat)
		}
	})
	events.Subscribe(world.EventCreatureKilled, func(ecs.Event) {
		ml.AddColored("The creature is destroyed!", MessageTypeCombat)
	})
	events.Subscribe(world.EventPlayerFell, func(ecs.Event) {
		ml.AddColored("You fall into the void. Press N for a new level.", MessageTypeAlert)
	})
	events.Subscribe(world.EventGoalReached, func(ecs.Event) {
		ml.AddColored("You reached the goal!", MessageTypeAlert)
	})
}

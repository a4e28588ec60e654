package services

//go:generate go tool stringer -type=Behavior -linecomment -output=behavior_string.go

// Behavior is a listener kind reacting to one persistence lifecycle event.
type Behavior int

const (
	_ Behavior = iota // zero value is invalid

	BehaviorInject // inject
	BehaviorClean  // clean
	BehaviorRemove // remove
	BehaviorUpload // upload
)

// Behaviors lists every behavior, optional ones first, in registration order.
var Behaviors = []Behavior{BehaviorInject, BehaviorClean, BehaviorRemove, BehaviorUpload}

// EventSubscriberTags maps drivers that hook into a persistence event system
// to the tag their subscribers are collected by. Drivers absent here (propel)
// dispatch without tagged subscribers.
var EventSubscriberTags = map[string]string{
	"orm":     "doctrine.event_subscriber",
	"mongodb": "doctrine_mongodb.odm.event_subscriber",
	"phpcr":   "doctrine_phpcr.event_subscriber",
}

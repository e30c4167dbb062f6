package eventbus

type SpecEventType string

const (
	SpecEventCreated          SpecEventType = "Created"
	SpecEventStructureUpdated SpecEventType = "StructureUpdated"
	SpecEventKeywordsUpdated  SpecEventType = "KeywordsUpdated"
	SpecEventDeleted          SpecEventType = "Deleted"
)

// SpecEvent 文档生命周期事件
type SpecEvent struct {
	Type       SpecEventType
	SpecID     string
	Name       string
	TemplateID string
}

type SpecEventHandler = Handler[SpecEvent]
type SpecEventBus = Bus[SpecEventType, SpecEvent]

func NewSpecEventBus() *SpecEventBus {
	return NewBus[SpecEventType, SpecEvent]()
}

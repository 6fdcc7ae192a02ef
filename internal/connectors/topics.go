package connectors

// Bus topics published by the radio interface. Payload types are noted next
// to each topic.
const (
	TopicConnStatus     = "conn.status"     // ConnectionStatus
	TopicRadioFrom      = "radio.from"      // radio events without a dedicated topic
	TopicNodeInfo       = "node.info"       // domain.NodeUpdate
	TopicLocalNode      = "node.local"      // domain.Node
	TopicChannels       = "channels"        // domain.ChannelList
	TopicTextMessage    = "text.message"    // domain.ChatMessage
	TopicMessageStatus  = "message.status"  // domain.MessageStatusUpdate
	TopicConfigComplete = "config.complete" // ConfigComplete
	TopicRawFrameIn     = "raw.frame.in"    // RawFrame
	TopicRawFrameOut    = "raw.frame.out"   // RawFrame
	TopicNodeDiscovered = "node.discovered" // domain.NodeDiscovered
)

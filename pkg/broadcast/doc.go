// Package broadcast fans typed values out to in-process subscribers.
//
// Broadcast never blocks. Each subscriber owns a bounded buffer; when it is
// full the oldest pending message is discarded to make room, so a slow reader
// always ends up with the most recent values rather than stale ones.
//
//	b := broadcast.NewMemoryBroadcaster[device.Info](4)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Broadcast(ctx, broadcast.Message[device.Info]{Data: info})
//
//	for msg := range sub.Receive(ctx) {
//	    render(msg.Data)
//	}
//
// A subscription ends when its context is done, when Close is called on it,
// or when the broadcaster is closed. In each case the receive channel is
// closed.
package broadcast

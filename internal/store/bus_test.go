package store

import "testing"

func TestBus(t *testing.T) {
	t.Run("Fans Out To All Subscribers", func(t *testing.T) {
		bus := NewBus()

		a, cancelA := bus.Subscribe("users")
		defer cancelA()
		b, cancelB := bus.Subscribe("users")
		defer cancelB()

		bus.Publish("users")

		for name, ch := range map[string]<-chan Event{"a": a, "b": b} {
			select {
			case ev := <-ch:
				if ev.Collection != "users" {
					t.Errorf("subscriber %s: expected users, got %s", name, ev.Collection)
				}
			default:
				t.Errorf("subscriber %s missed the event", name)
			}
		}
	})

	t.Run("Keyed Per Collection", func(t *testing.T) {
		bus := NewBus()

		users, cancel := bus.Subscribe("users")
		defer cancel()

		bus.Publish("songs")

		select {
		case <-users:
			t.Error("users subscriber should not see songs events")
		default:
		}
	})

	t.Run("Cancel Stops Delivery", func(t *testing.T) {
		bus := NewBus()

		ch, cancel := bus.Subscribe("users")
		cancel()
		cancel() // safe to call twice

		bus.Publish("users")

		if _, open := <-ch; open {
			t.Error("channel should be closed after cancel")
		}
	})

	t.Run("Full Subscriber Does Not Block Publisher", func(t *testing.T) {
		bus := NewBus()

		_, cancel := bus.Subscribe("users")
		defer cancel()

		// More publishes than the subscriber buffer holds; Publish must
		// drop rather than block.
		for i := 0; i < 64; i++ {
			bus.Publish("users")
		}
	})

	t.Run("Publish Without Subscribers", func(t *testing.T) {
		bus := NewBus()
		bus.Publish("ghost")
	})
}

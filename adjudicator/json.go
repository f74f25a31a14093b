package adjudicator

import (
	"encoding/json"
	"fmt"
)

// OrderType is the wire discriminator for an order's tagged JSON envelope.
type OrderType string

const (
	TypeHold        OrderType = "hold"
	TypeMove        OrderType = "move"
	TypeSupportHold OrderType = "support_hold"
	TypeSupportMove OrderType = "support_move"
	TypeConvoy      OrderType = "convoy"
)

// OrderMessage is the flat wire shape every order is exchanged as: a type
// discriminator plus whichever of the remaining fields that type uses. It
// is deliberately a plain struct rather than an interface value, the same
// way the teacher repo's own Order struct is a flat, field-tagged record —
// callers at the package boundary (tests, the CLI, a future HTTP handler)
// never need to know about the Adjudicator interface to read or write one.
type OrderMessage struct {
	Type      OrderType `json:"type"`
	Target    Province  `json:"target,omitempty"`
	Src       Province  `json:"src,omitempty"`
	Dest      Province  `json:"dest,omitempty"`
	DestCoast Coast     `json:"dest_coast,omitempty"`
}

// orderCodec is the registry entry for one OrderType: how to turn a decoded
// OrderMessage into the concrete Adjudicator value, and the reverse.
type orderCodec struct {
	decode func(OrderMessage) (Adjudicator, error)
	encode func(Adjudicator) (OrderMessage, bool)
}

var orderRegistry = make(map[OrderType]orderCodec)

// RegisterOrderType adds a new discriminator to the tagged JSON scheme.
// Downstream variants (see SPEC_FULL.md §4's Convert example) use this to
// extend the wire format without modifying this package.
func RegisterOrderType(t OrderType, decode func(OrderMessage) (Adjudicator, error), encode func(Adjudicator) (OrderMessage, bool)) {
	orderRegistry[t] = orderCodec{decode: decode, encode: encode}
}

func init() {
	RegisterOrderType(TypeHold,
		func(OrderMessage) (Adjudicator, error) { return Hold{}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			_, ok := a.(Hold)
			return OrderMessage{Type: TypeHold}, ok
		},
	)
	RegisterOrderType(TypeMove,
		func(m OrderMessage) (Adjudicator, error) { return Move{Dest: Dest{Province: m.Dest, Coast: m.DestCoast}}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			mv, ok := a.(Move)
			if !ok {
				return OrderMessage{}, false
			}
			return OrderMessage{Type: TypeMove, Dest: mv.Dest.Province, DestCoast: mv.Dest.Coast}, true
		},
	)
	RegisterOrderType(TypeSupportHold,
		func(m OrderMessage) (Adjudicator, error) { return SupportHold{Target: m.Target}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			sh, ok := a.(SupportHold)
			if !ok {
				return OrderMessage{}, false
			}
			return OrderMessage{Type: TypeSupportHold, Target: sh.Target}, true
		},
	)
	RegisterOrderType(TypeSupportMove,
		func(m OrderMessage) (Adjudicator, error) { return SupportMove{Src: m.Src, Dest: m.Dest}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			sm, ok := a.(SupportMove)
			if !ok {
				return OrderMessage{}, false
			}
			return OrderMessage{Type: TypeSupportMove, Src: sm.Src, Dest: sm.Dest}, true
		},
	)
	RegisterOrderType(TypeConvoy,
		func(m OrderMessage) (Adjudicator, error) { return Convoy{Src: m.Src, Dest: m.Dest}, nil },
		func(a Adjudicator) (OrderMessage, bool) {
			cv, ok := a.(Convoy)
			if !ok {
				return OrderMessage{}, false
			}
			return OrderMessage{Type: TypeConvoy, Src: cv.Src, Dest: cv.Dest}, true
		},
	)
}

// DecodeOrder turns one wire message into the Adjudicator value it names.
func DecodeOrder(msg OrderMessage) (Adjudicator, error) {
	codec, ok := orderRegistry[msg.Type]
	if !ok {
		return nil, fmt.Errorf("adjudicator: unknown order type %q", msg.Type)
	}
	return codec.decode(msg)
}

// EncodeOrder turns an Adjudicator value into its wire message.
func EncodeOrder(a Adjudicator) (OrderMessage, error) {
	for _, codec := range orderRegistry {
		if msg, ok := codec.encode(a); ok {
			return msg, nil
		}
	}
	return OrderMessage{}, fmt.Errorf("adjudicator: no registered wire encoding for %T", a)
}

// DecodeOrders decodes a full phase's orders, keyed by source province.
func DecodeOrders(msgs map[Province]OrderMessage) (Orders, error) {
	orders := make(Orders, len(msgs))
	for prov, msg := range msgs {
		a, err := DecodeOrder(msg)
		if err != nil {
			return nil, fmt.Errorf("order at %s: %w", prov, err)
		}
		orders[prov] = a
	}
	return orders, nil
}

// EncodeOrders is the inverse of DecodeOrders.
func EncodeOrders(orders Orders) (map[Province]OrderMessage, error) {
	msgs := make(map[Province]OrderMessage, len(orders))
	for prov, a := range orders {
		msg, err := EncodeOrder(a)
		if err != nil {
			return nil, fmt.Errorf("order at %s: %w", prov, err)
		}
		msgs[prov] = msg
	}
	return msgs, nil
}

// MarshalOrdersJSON and UnmarshalOrdersJSON convert a full order set to and
// from an object mapping province to tagged order envelope, the same shape
// as the "orders" field of the document cmd/adjudicate reads.
func MarshalOrdersJSON(orders Orders) ([]byte, error) {
	msgs, err := EncodeOrders(orders)
	if err != nil {
		return nil, err
	}
	return json.Marshal(msgs)
}

func UnmarshalOrdersJSON(data []byte) (Orders, error) {
	var msgs map[Province]OrderMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, err
	}
	return DecodeOrders(msgs)
}

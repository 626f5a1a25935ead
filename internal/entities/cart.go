package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"strconv"
)

// CartOwner идентифицирует владельца корзины: либо аккаунт, либо анонимная сессия.
type CartOwner struct {
	UserID    int64
	SessionID string
}

// Identified сообщает, привязана ли корзина к аккаунту.
func (o CartOwner) Identified() bool {
	return o.UserID != 0
}

func (o CartOwner) String() string {
	if o.Identified() {
		return "user:" + strconv.FormatInt(o.UserID, 10)
	}
	return "session:" + o.SessionID
}

// CartEntry хранит позицию корзины. PriceCents - цена на момент добавления,
// используется только для отображения, при оформлении заказа цена перечитывается.
type CartEntry struct {
	ProductID  int64
	Quantity   int
	PriceCents int
}

// CartLine - позиция корзины, сведённая с актуальным товаром каталога.
type CartLine struct {
	Product        Product
	Quantity       int
	PriceCents     int
	LineTotalCents int
}

var ErrCartItemNotFound = errors.New("item not in cart")

var ErrOutOfStock = errors.New("product is out of stock")

func MarshalCartEntries(entries []CartEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func UnmarshalCartEntries(data []byte) ([]CartEntry, error) {
	var entries []CartEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

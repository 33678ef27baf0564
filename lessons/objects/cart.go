package objects

import (
	"fmt"
	"iter"

	"github.com/robbyt/go-pyprimer/lessons/containers"
)

type CartItem struct {
	Item  string
	Price int
}

func (i CartItem) String() string {
	return fmt.Sprintf("{'item': '%s', 'price': %d}", i.Item, i.Price)
}

// ShoppingCart supports len, iteration, indexing and a string form.
type ShoppingCart struct {
	items []CartItem
}

var (
	_ Lengther            = (*ShoppingCart)(nil)
	_ Iterable[CartItem]  = (*ShoppingCart)(nil)
	_ Indexable[CartItem] = (*ShoppingCart)(nil)
	_ fmt.Stringer        = (*ShoppingCart)(nil)
)

func NewShoppingCart() *ShoppingCart {
	return &ShoppingCart{}
}

func (c *ShoppingCart) Add(item string, price int) {
	c.items = append(c.items, CartItem{Item: item, Price: price})
}

func (c *ShoppingCart) Len() int {
	return len(c.items)
}

func (c *ShoppingCart) All() iter.Seq[CartItem] {
	return func(yield func(CartItem) bool) {
		for _, it := range c.items {
			if !yield(it) {
				return
			}
		}
	}
}

func (c *ShoppingCart) At(i int) (CartItem, error) {
	return containers.Index(c.items, i)
}

func (c *ShoppingCart) Total() int {
	total := 0
	for it := range c.All() {
		total += it.Price
	}
	return total
}

func (c *ShoppingCart) String() string {
	return fmt.Sprintf("Cart(%d items, total: ₹%d)", c.Len(), c.Total())
}

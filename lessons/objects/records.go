package objects

import (
	"fmt"
	"sync"

	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

type Product struct {
	Name  string
	Price int
}

func (p Product) String() string {
	return fmt.Sprintf("%s - ₹%d", p.Name, p.Price)
}

func (p Product) GoString() string {
	return fmt.Sprintf("Product('%s', %d)", p.Name, p.Price)
}

var (
	countersMu    sync.Mutex
	totalCounters int
)

// Counter counts events under a name. Every constructed Counter adds one to the
// process wide TotalCounters.
type Counter struct {
	Name  string
	Count int
}

func NewCounter(name string) *Counter {
	countersMu.Lock()
	totalCounters++
	countersMu.Unlock()
	return &Counter{Name: name}
}

func (c *Counter) Increment() {
	c.Count++
}

// TotalCounters returns how many counters were created since the process started.
func TotalCounters() int {
	countersMu.Lock()
	defer countersMu.Unlock()
	return totalCounters
}

const bankName = "SBI"

// BankAccount keeps its balance unexported; it changes only through Deposit.
type BankAccount struct {
	Owner   string
	balance int
}

func NewBankAccount(owner string, balance int) *BankAccount {
	return &BankAccount{Owner: owner, balance: balance}
}

func (a *BankAccount) BankName() string {
	return bankName
}

// Deposit adds amount to the balance. Non-positive amounts are ignored.
func (a *BankAccount) Deposit(amount int) {
	if amount > 0 {
		a.balance += amount
	}
}

func (a *BankAccount) Balance() int {
	return a.balance
}

type Employee struct {
	FirstName string
	LastName  string
	salary    int
}

func NewEmployee(firstName, lastName string, salary int) (*Employee, error) {
	e := &Employee{FirstName: firstName, LastName: lastName}
	if err := e.SetSalary(salary); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) Salary() int {
	return e.salary
}

// SetSalary rejects negative values and keeps the previous salary.
func (e *Employee) SetSalary(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: salary cannot be negative", errkind.ErrValue)
	}
	e.salary = v
	return nil
}

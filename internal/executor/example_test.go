package executor_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/aryankumar/panosctl/internal/executor"
)

func ExamplePool() {
	// The handler performs one remote operation per item; here it just
	// uppercases the payload.
	pool, err := executor.New(2, func(ctx context.Context, it executor.Item[string]) (string, error) {
		return strings.ToUpper(it.Payload), nil
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	pool.Submit(
		executor.Item[string]{Label: "web-srv", Payload: "web-srv"},
		executor.Item[string]{Label: "db-srv", Payload: "db-srv"},
	)

	summary, err := pool.Execute(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("succeeded: %d, failed: %d\n", summary.Succeeded, summary.Failed)
	// Output: succeeded: 2, failed: 0
}

func ExampleRetry() {
	attempts := 0
	op := func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 2 {
			return "", fmt.Errorf("connection timed out")
		}
		return "created", nil
	}

	policy := executor.Policy{MaxAttempts: 3}
	value, n, err := executor.Retry(context.Background(), policy, op)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s after %d attempts\n", value, n)
	// Output: created after 2 attempts
}

package client_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/otiai10/sumsub/internal/client"
	"github.com/otiai10/sumsub/internal/signature"
)

func Example() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(signature.HeaderAccessSignature) == "" {
			http.Error(w, "unsigned", http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	c := client.New("sbx:app-token", []byte("secret"), client.WithBaseURL(srv.URL))
	status, err := c.GetAPIHealthStatus(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(status.Status)
	// Output: ok
}

func ExampleEncodeNDJSON() {
	body, _ := client.EncodeNDJSON([]client.WalletAddress{
		{Address: "a1", Currency: "BTC", Network: "BTC"},
		{Address: "a2", Currency: "ETH", Network: "ETH"},
	})
	fmt.Println(string(body))
	// Output:
	// {"address":"a1","currency":"BTC","network":"BTC"}
	// {"address":"a2","currency":"ETH","network":"ETH"}
}

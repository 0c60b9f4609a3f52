// ksoft package is a client for the KSoft.Si REST API, covering the global
// ban list and the image endpoints.
//
// Key Features:
//   - Authenticated Client: Bearer-authenticated access to the bans and images sub-APIs.
//   - Ban Feed Events: A background poller that turns the incremental ban update feed into OnBan/OnUnban events.
//   - Hook Registry: Ordered, deduplicated callbacks with per-hook failure isolation.
//   - Pluggable Mode: An attach-once factory that binds a single client to a host application.
//   - Error Handling: Typed transport and API errors for direct calls, contain-and-log boundaries for the background poller.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//
//	    ksoft "github.com/ksoft-si/ksoftgo"
//	)
//
//	func main() {
//	    client, err := ksoft.New(&ksoft.Config{APIKey: "your api key"})
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    banned, err := client.Bans().Check(context.Background(), 123456789)
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(banned)
//	}
//
// To receive ban feed events, plug the client into a host application
// implementing the [Host] interface and register hooks:
//
//	client, _ := ksoft.Pluggable(bot, &ksoft.Config{APIKey: "your api key"})
//	client.RegisterBanHook(func(event *ksoft.Event) {
//	    fmt.Println(event.Type, event.Ban.User)
//	})
//	client.Start(context.Background())
package ksoft

package controller_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"

	"github.com/m-molecula741/quist/internal/app/auth"
	"github.com/m-molecula741/quist/internal/app/controller"
	"github.com/m-molecula741/quist/internal/app/gist"
	"github.com/m-molecula741/quist/internal/app/middleware"
	"github.com/m-molecula741/quist/internal/app/storage"
)

// Пример создания и удаления gist в эмуляторе через клиент quist
func Example_createAndDelete() {
	store, _ := storage.NewInMemoryStorage("")
	authMW, _ := middleware.NewAuthMiddleware("username:token")
	ts := httptest.NewServer(controller.NewHTTPController(store, authMW, "https://gist.example.com"))
	defer ts.Close()

	ctx := context.Background()
	client := gist.NewClient(ts.URL, auth.Credential{Username: "username", Token: "token"})

	created, err := client.Create(ctx, &gist.Gist{
		Files: gist.FileMap{"hello.txt": {Content: "Hello World\n"}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.HasPrefix(created.Value.URL, "https://gist.example.com/username/"))

	deleted, err := client.Delete(ctx, created.Value.ID)
	fmt.Println(deleted.OK(), err)

	again, _ := client.Delete(ctx, created.Value.ID)
	fmt.Println(again.Err.Message)

	// Output:
	// true
	// true <nil>
	// Not Found
}

// Пример ответа на запрос без учетных данных
func Example_unauthorized() {
	store, _ := storage.NewInMemoryStorage("")
	authMW, _ := middleware.NewAuthMiddleware("username:token")
	ts := httptest.NewServer(controller.NewHTTPController(store, authMW, ""))
	defer ts.Close()

	client := gist.NewClient(ts.URL, auth.Credential{Username: "username", Token: "wrong"})
	resp, err := client.Create(context.Background(), &gist.Gist{
		Files: gist.FileMap{"hello.txt": {Content: "Hello World\n"}},
	})
	fmt.Println(resp.Err.Message, err)

	// Output:
	// Requires authentication <nil>
}

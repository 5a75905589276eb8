// Package main MovieHub API
//
//	@title			MovieHub API
//	@version		1.0.0
//	@description	MovieHub manages movies, news and twitter posts about them
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api
package main

import "github.com/yong/moviehub/internal"

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	internal.Run()
}

package main

import "github.com/podqueue/playlist-api/cmd"

// @title           Playlist API
// @version         1.0.0
// @description     A backend service for managing playlists of podcast episodes
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.url     https://github.com/podqueue/playlist-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

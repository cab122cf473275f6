package main

import "github.com/mauiplayer/radio-api/cmd"

// @title           Radio API
// @version         1.0.0
// @description     Aggregated internet radio stations for the media player, backed by radio-browser.info
// @contact.name    API Support
// @contact.url     https://github.com/mauiplayer/radio-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}

package tags

import "github.com/yohamta/donburi"

var (
	Star      = donburi.NewTag().SetName("Star")
	Container = donburi.NewTag().SetName("Container")
	Target    = donburi.NewTag().SetName("Target")
	Icon      = donburi.NewTag().SetName("Icon")
)

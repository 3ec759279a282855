package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Bogota")
	if err != nil {
		panic(err)
	}
}

// RenderTime formats a stored unix timestamp the way the admin panel's
// servers render their dates, because our runners sometimes end up in
// other regions and would otherwise print shifted wall clocks.
func RenderTime(unix int64) string {
	return time.Unix(unix, 0).In(Location).Format(time.DateTime)
}

package paginated

import "github.com/redis/go-redis/v9"

var (
	// KEYS[1] -> key of the list
	// ARGV[1] -> start offset, negative to skip the range
	// ARGV[2] -> stop offset
	pageCmd = redis.NewScript(`
		local n = redis.call("LLEN", KEYS[1])
		local res = {n}
		if tonumber(ARGV[1]) < 0 then
			return res
		end
		local items = redis.call("LRANGE", KEYS[1], ARGV[1], ARGV[2])
		for _, item in ipairs(items) do
			table.insert(res, item)
		end
		return res
	`)
)

package roseredis

// If returns a handler that passes the reply to then when cond holds and to els
// otherwise. Either branch may be nil, which merges nothing.
func If(cond func(reply any) bool, then Handler, els Handler) Handler {
	return func(reply any) Directive {

		h := els
		if cond(reply) {
			h = then
		}

		if h == nil {
			return Directive{}
		}
		return h(reply)
	}
}

// NotNil is a condition for If that holds for any reply except nil, which is what a
// missing key comes back as.
func NotNil(reply any) bool {
	return reply != nil
}

package queue

// HotPotato passes the potato num times around the circle and drops
// whoever holds it, until one player is left.
func HotPotato[E comparable](players []E, num int) (eliminated []E, winner E) {
	if len(players) == 0 {
		return nil, winner
	}

	q := NewQueue[E]()
	for _, p := range players {
		q.Enqueue(p)
	}
	eliminated = make([]E, 0, len(players)-1)
	for q.Len() > 1 {
		for i := 0; i < num; i++ {
			p, _ := q.Dequeue()
			q.Enqueue(p)
		}
		p, _ := q.Dequeue()
		eliminated = append(eliminated, p)
	}
	winner, _ = q.Dequeue()
	return eliminated, winner
}

// IsPalindrome compares the runes from both ends. Case and spaces are
// significant and the empty string is not a palindrome.
func IsPalindrome(s string) bool {
	if len(s) == 0 {
		return false
	}

	d := NewDeque[rune]()
	for _, r := range s {
		d.AddBack(r)
	}
	for d.Len() > 1 {
		front, _ := d.RemoveFront()
		back, _ := d.RemoveBack()
		if front != back {
			return false
		}
	}
	return true
}

package render

// walkerSprite returns the sprite variant used for a walker type, false
// means the walker isn't shown
type walkerSprite func(t uint16) (int, bool)

func caesar3Sprite(t uint16) (int, bool) {
	switch t {
	case 0x45:
		return c3Wolf, true
	case 0xb, 0xc, 0xd:
		return c3Soldier, true
	case 0x31:
		return c3Barbarian, true
	case 0x2d, 0x2f:
		return c3Enemy, true
	}
	return 0, false
}

func pharaohSprite(t uint16) (int, bool) {
	switch t {
	case 0xb, 0xc, 0xd:
		return phSoldier, true
	case 0x14, 0x19, 0x4c, 0x4d, 0x4e: // Trade ships, fishing boats, ferries, transports and warships
		return phShip, true
	case 0x54, 0x68:
		return phAnimal, true
	case 0x2b, 0x2c, 0x2d, 0x36, 0x37, 0x63:
		return phEnemy, true
	}
	return 0, false
}

func zeusSprite(t uint16) (int, bool) {
	switch t {
	case 0x6, 0x27, 0x2e, 0x2b: // Immigrants, sentries and ranch horses
		return 0, false
	}
	switch t & 0xff {
	case 0x43:
		return zGod, true
	case 0x44:
		return zMonster, true
	case 0x45:
		return zHero, true
	}
	switch {
	case t >= 0x28 && t <= 0x2a, t == 0x3f, t == 0x40:
		return zEnemy, true
	}
	return zHuman, true
}

func (p *painter) walkers(r *Resolver, sprites family, sprite walkerSprite) {
	for _, w := range p.doc.Walkers {
		if w.Type == 0 {
			continue
		}
		if w.X < 0 || w.Y < 0 || w.X >= p.doc.MapSize || w.Y >= p.doc.MapSize {
			continue
		}
		n, ok := sprite(w.Type)
		if !ok {
			continue
		}
		c := r.colour(sprites, n)
		p.paint(w.X, w.Y, c, c)
	}
}

package migration

import (
	"context"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// gameSeed is the static slot catalog. All games are hosted by the provider;
// the portal only stores metadata and the launch URL.
var gameSeed = []entity.Game{
	{Title: "Mythical Guardians", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/MythicalGuardians.webp", PlayURL: "https://nagaimam.xyz/pgsoft/mythicalguardians", Slug: "mythical-guardians"},
	{Title: "Alibaba's Cave Of Fortune", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/AlibabasCaveofFortune.webp", PlayURL: "https://nagaimam.xyz/pgsoft/alibabascaveoffortune", Slug: "alibabas-cave-of-fortune"},
	{Title: "Forbidden Alchemy", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/ForbiddenAlchemy.webp", PlayURL: "https://nagaimam.xyz/pgsoft/forbiddenalchemy", Slug: "forbidden-alchemy"},
	{Title: "Pharaoh Royals", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/PharaohRoyals.webp", PlayURL: "https://nagaimam.xyz/pgsoft/pharaohroyals", Slug: "pharaoh-royals"},
	{Title: "Chocolate Deluxe", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/ChocolateDeluxe.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/chocolatedeluxe", Slug: "chocolate-deluxe"},
	{Title: "Mahjong Ways", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/MahjongWays.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/mahjongways", Slug: "mahjong-ways"},
	{Title: "Mahjong Ways 2", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/MahjongWays2.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/mahjongways2", Slug: "mahjong-ways-2"},
	{Title: "Mafia Mayhem", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/MafiaMayhem.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/mafiamayhem", Slug: "mafia-mayhem"},
	{Title: "Wild Bounty Showdown", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/WildBountyShowdown.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/wildbountyshowdown", Slug: "wild-bounty-showdown"},
	{Title: "Lucky Neko", Provider: "PGSoft", ImageURL: "https://pixel.gambar-lp.com/game-demo/pgsoft/LuckyNeko.jpg", PlayURL: "https://nagaimam.xyz/pgsoft/luckyneko", Slug: "lucky-neko"},
	{Title: "Gates Of Gatot Kaca Super Scatter", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/GatesofGatotKacaSuperScatter.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/gatesofgatotkacasuperscatter", Slug: "gates-of-gatot-kaca-super-scatter"},
	{Title: "Sugar Rush Super Scatter", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/SugarRushSuperScatter.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/sugarrushsuperscatter", Slug: "sugar-rush-super-scatter"},
	{Title: "Fortune Of Olympus", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/FortuneofOlympus.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/fortuneofolympus", Slug: "fortune-of-olympus"},
	{Title: "King Of Spear", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/KingofSpear.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/kingofspear", Slug: "king-of-spear"},
	{Title: "Gates Of Pyroth", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/GatesofPyroth.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/gatesofpyroth", Slug: "gates-of-pyroth"},
	{Title: "Anaconda Gold", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/AnacondaGold.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/anacondagold", Slug: "anaconda-gold"},
	{Title: "Starlight Archer 1000", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/StarlightArcher1000.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/starlightarcher1000", Slug: "starlight-archer-1000"},
	{Title: "Wisdom Of Athena 1000 Xmas", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/WisdomofAthena1000Xmas.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/wisdomofathena1000xmas", Slug: "wisdom-of-athena-1000-xmas"},
	{Title: "Sweet Craze", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/SweetCraze.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/sweetcraze", Slug: "sweet-craze"},
	{Title: "Zeus vs Typhon", Provider: "PragmaticPlay", ImageURL: "https://pixel.gambar-lp.com/game-demo/pragmaticplay/ZeusvsTyphon.webp", PlayURL: "https://nagaimam.xyz/pragmaticplay/zeusvstyphon", Slug: "zeus-vs-typhon"},
}

// SeedGames populates the catalog when the games table is empty.
// Idempotent: a non-empty catalog is left untouched.
func SeedGames(ctx context.Context, gameRepo persistence.GameRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	count, err := gameRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Game catalog already seeded, skipping", map[string]any{
			"games": count,
		})
		return nil
	}

	logger.Info("Seeding game catalog", map[string]any{
		"games": len(gameSeed),
	})

	for i := range gameSeed {
		g := gameSeed[i]
		g.Category = "slots"
		g.IsActive = true
		g.CreatedAt = timeProvider.Now()
		if err := gameRepo.CreateGame(ctx, &g); err != nil {
			return err
		}
	}

	logger.Info("Game catalog seeded", nil)
	return nil
}

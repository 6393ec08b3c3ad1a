package store_test

import (
	"context"

	st "github.com/moveplanner/estimator/internal/store"
	"github.com/moveplanner/estimator/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		gormDB = newTestDB()
		store = st.NewStore(gormDB)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(BeNil())
	})

	AfterAll(func() {
		store.Close()
	})

	Context("transaction", func() {
		It("insert a heavy item successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			item, err := store.HeavyItem().Create(ctx, model.HeavyItem{Label: "Piano", Fee: 150})
			Expect(err).To(BeNil())
			Expect(item.ID).NotTo(BeZero())

			// commit
			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from heavy_items;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a heavy item successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			_, err = store.HeavyItem().Create(ctx, model.HeavyItem{Label: "Piano"})
			Expect(err).To(BeNil())

			// count in the same transaction
			items, err := store.HeavyItem().List(ctx)
			Expect(err).To(BeNil())
			Expect(items).To(HaveLen(1))

			// rollback
			_, cerr := st.Rollback(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from heavy_items;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("reuses the transaction already in the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, cerr := st.Rollback(ctx)
			Expect(cerr).To(BeNil())
		})

		It("ends a transaction only once", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			_, err = store.HeavyItem().Create(ctx, model.HeavyItem{Label: "Gun Safe", Fee: 125})
			Expect(err).To(BeNil())

			committed, err := st.Commit(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(committed)).To(BeNil())

			// the original context still holds the finished transaction
			Expect(st.FromContext(ctx)).To(BeNil())
			_, err = st.Commit(ctx)
			Expect(err).NotTo(BeNil())
			_, err = st.Rollback(ctx)
			Expect(err).NotTo(BeNil())

			count := 0
			Expect(gormDB.Raw("SELECT COUNT(*) from heavy_items;").Scan(&count).Error).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("commit without transaction is a no-op", func() {
			ctx, err := st.Commit(context.TODO())
			Expect(err).To(BeNil())
			Expect(st.FromContext(ctx)).To(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from heavy_items;")
		})
	})

	Context("seed", func() {
		It("seeds the default catalog", func() {
			data, err := st.DefaultSeed()
			Expect(err).To(BeNil())

			Expect(store.Seed(context.TODO(), data)).To(BeNil())

			buildings, err := store.Building().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(buildings).To(HaveLen(len(data.Buildings)))
			Expect(buildings[0].Label()).To(Equal(data.Buildings[0].Type))

			modifiers, err := store.HourModifier().List(context.TODO())
			Expect(err).To(BeNil())
			for _, m := range modifiers {
				Expect(m.Hours).NotTo(BeZero())
			}

			meta, err := store.MovingMeta().Get(context.TODO(), "travel_fee")
			Expect(err).To(BeNil())
			Expect(meta.Value).To(Equal("75"))
		})

		It("rolls back everything when an entry is invalid", func() {
			data := st.SeedData{
				HeavyItems: []model.HeavyItem{{Label: "Piano"}},
				Blackouts:  []model.Blackout{{Date: "not a date"}},
			}

			Expect(store.Seed(context.TODO(), data)).NotTo(BeNil())

			count := 0
			err := gormDB.Raw("SELECT COUNT(*) from heavy_items;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("shares building types between buildings with the same label", func() {
			data := st.SeedData{
				Buildings: []st.SeedBuilding{{Type: "Office"}, {Type: "Office"}},
			}
			Expect(store.Seed(context.TODO(), data)).To(BeNil())

			count := 0
			err := gormDB.Raw("SELECT COUNT(*) from building_types;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("parses seed files strictly", func() {
			_, err := st.ParseSeed([]byte("heavyItems:\n  - label: Piano\n    weight: 300\n"))
			Expect(err).NotTo(BeNil())

			data, err := st.ParseSeed([]byte("heavyItems:\n  - label: Piano\n    fee: 150\n"))
			Expect(err).To(BeNil())
			Expect(data.HeavyItems).To(ConsistOf(model.HeavyItem{Label: "Piano", Fee: 150}))
		})

		It("fails to load a missing seed file", func() {
			_, err := st.LoadSeedFile("/does/not/exist.yaml")
			Expect(err).NotTo(BeNil())
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from hour_modifiers;")
			gormDB.Exec("DELETE from buildings;")
			gormDB.Exec("DELETE from building_types;")
			gormDB.Exec("DELETE from heavy_items;")
			gormDB.Exec("DELETE from blackouts;")
			gormDB.Exec("DELETE from crews;")
			gormDB.Exec("DELETE from moving_meta;")
			gormDB.Exec("DELETE from stair_modifiers;")
		})
	})

	Context("statistics", func() {
		It("counts the catalog", func() {
			data := st.SeedData{
				Buildings:  []st.SeedBuilding{{Type: "Office"}, {Type: "House - 2 BDR"}},
				HeavyItems: []model.HeavyItem{{Label: "Piano"}},
				Blackouts: []model.Blackout{
					{Date: "2026-12-25", Meridian: model.MeridianAllDay},
					{Date: "2026-12-24", Meridian: model.MeridianAfternoon},
					{Date: "2026-12-31", Meridian: model.MeridianAfternoon},
				},
				Crews: []model.Crew{{Size: 2, HourlyRate: 109}},
			}
			Expect(store.Seed(context.TODO(), data)).To(BeNil())

			stats, err := store.Statistics(context.TODO())
			Expect(err).To(BeNil())
			Expect(stats.Buildings).To(Equal(int64(2)))
			Expect(stats.HeavyItems).To(Equal(int64(1)))
			Expect(stats.Crews).To(Equal(int64(1)))
			Expect(stats.BlackoutsByMeridian).To(Equal(map[model.Meridian]int64{
				model.MeridianAllDay:    1,
				model.MeridianAfternoon: 2,
			}))
		})

		AfterEach(func() {
			gormDB.Exec("DELETE from buildings;")
			gormDB.Exec("DELETE from building_types;")
			gormDB.Exec("DELETE from heavy_items;")
			gormDB.Exec("DELETE from blackouts;")
			gormDB.Exec("DELETE from crews;")
		})
	})
})
